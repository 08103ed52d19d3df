package models

import (
	"time"
)

type Category struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string    `gorm:"size:128;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	ParentID  *string   `gorm:"size:36;index"`
	Parent    *Category `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
