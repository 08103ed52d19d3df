package models

import (
	"fmt"
	"time"
)

// ValidationError rejects a ProductFeature write. The message is shown
// to the end user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProductFeature assigns one Feature to one Product. Exactly one value
// slot is meaningful, chosen by the feature's input type: ValueSelectedID
// for select-type features, ValueCustom for number/text ones. Validate
// enforces that before every write.
type ProductFeature struct {
	ID              string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID       string        `gorm:"size:36;not null;uniqueIndex:idx_product_feature"`
	Product         Product       `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	FeatureID       string        `gorm:"size:36;not null;uniqueIndex:idx_product_feature"`
	Feature         Feature       `gorm:"foreignKey:FeatureID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ValueSelectedID *string       `gorm:"size:36;index"`
	ValueSelected   *FeatureValue `gorm:"foreignKey:ValueSelectedID;constraint:OnDelete:SET NULL"`
	ValueCustom     string        `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the populated value slot against the feature's input
// type. Rules run in order and the first violation wins.
func (pf *ProductFeature) Validate(feature *Feature) *ValidationError {
	if feature.InputType == InputTypeSelect && pf.ValueSelectedID == nil {
		return &ValidationError{Message: "select-type feature requires a chosen value from the list."}
	}

	if feature.InputType == InputTypeSelect && pf.ValueCustom != "" {
		return &ValidationError{Message: "select-type feature does not accept a manually entered value."}
	}

	if feature.InputType != InputTypeSelect && pf.ValueSelectedID != nil {
		return &ValidationError{Message: "non-select-type feature requires manual input; list selection is not allowed."}
	}

	if feature.InputType == InputTypeNumber && pf.ValueCustom != "" && !isDigits(pf.ValueCustom) {
		return &ValidationError{Message: "value must be a valid number."}
	}

	return nil
}

// DisplayValue renders the assignment for listings. Requires Feature
// (and ValueSelected, when set) to be preloaded.
func (pf *ProductFeature) DisplayValue() string {
	if pf.Feature.InputType == InputTypeSelect && pf.ValueSelected != nil {
		return pf.ValueSelected.Value
	}
	if pf.ValueCustom != "" {
		return fmt.Sprintf("%s %s", pf.ValueCustom, pf.Feature.Unit)
	}
	return "-"
}

// Only unsigned integer strings pass: "10.5" and "-3" are rejected for
// number-typed features.
func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
