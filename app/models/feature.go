package models

import (
	"time"
)

const (
	InputTypeSelect = "select"
	InputTypeNumber = "number"
	InputTypeText   = "text"
)

// Feature is a reusable attribute template shared across products,
// e.g. "Color" or "Size". InputType decides how an assignment gets
// its value: picked from the Values list, or typed in manually.
type Feature struct {
	ID        string         `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string         `gorm:"size:100;not null"`
	InputType string         `gorm:"size:10;not null;default:'select'"`
	Unit      string         `gorm:"size:20"`
	Values    []FeatureValue `gorm:"foreignKey:FeatureID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f *Feature) InputTypeLabel() string {
	switch f.InputType {
	case InputTypeSelect:
		return "Selectable"
	case InputTypeNumber:
		return "Numeric value"
	case InputTypeText:
		return "Free text"
	}
	return f.InputType
}

// FeatureValue is one allowed option for a select-type feature.
type FeatureValue struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	FeatureID string  `gorm:"size:36;not null;index"`
	Feature   Feature `gorm:"foreignKey:FeatureID"`
	Value     string  `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
