package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string           `gorm:"size:128;not null"`
	Description string           `gorm:"type:text"`
	Stock       int              `gorm:"not null;default:0"`
	Price       decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Slug        string           `gorm:"size:128;not null;uniqueIndex"`
	Features    []ProductFeature `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
