package models

import (
	"time"
)

type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Username  string `gorm:"size:150;not null;uniqueIndex"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	Password  string `gorm:"size:255;not null"`
	IsStaff   bool   `gorm:"not null;default:false"`
	Bio       string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
