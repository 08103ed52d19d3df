package models_test

import (
	"testing"

	"github.com/yilmazatalay/go-catalog/app/models"
)

func strPtr(s string) *string {
	return &s
}

func TestProductFeatureValidate(t *testing.T) {
	tests := []struct {
		name        string
		inputType   string
		selectedID  *string
		valueCustom string
		wantMessage string
	}{
		{
			name:        "select without a chosen value",
			inputType:   models.InputTypeSelect,
			selectedID:  nil,
			valueCustom: "",
			wantMessage: "select-type feature requires a chosen value from the list.",
		},
		{
			name:        "select with both slots fails on the first rule",
			inputType:   models.InputTypeSelect,
			selectedID:  nil,
			valueCustom: "red",
			wantMessage: "select-type feature requires a chosen value from the list.",
		},
		{
			name:        "select with a manual value",
			inputType:   models.InputTypeSelect,
			selectedID:  strPtr("value-1"),
			valueCustom: "red",
			wantMessage: "select-type feature does not accept a manually entered value.",
		},
		{
			name:        "text with a list selection",
			inputType:   models.InputTypeText,
			selectedID:  strPtr("value-1"),
			valueCustom: "",
			wantMessage: "non-select-type feature requires manual input; list selection is not allowed.",
		},
		{
			name:        "number with a decimal point",
			inputType:   models.InputTypeNumber,
			selectedID:  nil,
			valueCustom: "10.5",
			wantMessage: "value must be a valid number.",
		},
		{
			name:        "number with a sign",
			inputType:   models.InputTypeNumber,
			selectedID:  nil,
			valueCustom: "-3",
			wantMessage: "value must be a valid number.",
		},
		{
			name:        "valid select",
			inputType:   models.InputTypeSelect,
			selectedID:  strPtr("value-1"),
			valueCustom: "",
		},
		{
			name:        "valid number",
			inputType:   models.InputTypeNumber,
			selectedID:  nil,
			valueCustom: "42",
		},
		{
			name:        "valid text",
			inputType:   models.InputTypeText,
			selectedID:  nil,
			valueCustom: "Cotton",
		},
		{
			name:        "number with empty custom value",
			inputType:   models.InputTypeNumber,
			selectedID:  nil,
			valueCustom: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feature := models.Feature{InputType: tt.inputType}
			assignment := models.ProductFeature{
				ValueSelectedID: tt.selectedID,
				ValueCustom:     tt.valueCustom,
			}

			verr := assignment.Validate(&feature)
			if tt.wantMessage == "" {
				if verr != nil {
					t.Fatalf("Validate() = %q, want nil", verr.Message)
				}
				return
			}
			if verr == nil {
				t.Fatalf("Validate() = nil, want %q", tt.wantMessage)
			}
			if verr.Message != tt.wantMessage {
				t.Errorf("Validate() = %q, want %q", verr.Message, tt.wantMessage)
			}
		})
	}
}

func TestProductFeatureDisplayValue(t *testing.T) {
	blue := models.FeatureValue{ID: "value-1", Value: "Blue"}

	tests := []struct {
		name       string
		feature    models.Feature
		selected   *models.FeatureValue
		custom     string
		want       string
	}{
		{
			name:     "selected value wins for select features",
			feature:  models.Feature{InputType: models.InputTypeSelect, Unit: "irrelevant"},
			selected: &blue,
			want:     "Blue",
		},
		{
			name:    "custom value with unit",
			feature: models.Feature{InputType: models.InputTypeText, Unit: "cm"},
			custom:  "180",
			want:    "180 cm",
		},
		{
			name:    "custom value without unit keeps the separator",
			feature: models.Feature{InputType: models.InputTypeNumber},
			custom:  "42",
			want:    "42 ",
		},
		{
			name:    "nothing set",
			feature: models.Feature{InputType: models.InputTypeSelect},
			want:    "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := models.ProductFeature{
				Feature:       tt.feature,
				ValueSelected: tt.selected,
				ValueCustom:   tt.custom,
			}
			if tt.selected != nil {
				assignment.ValueSelectedID = &tt.selected.ID
			}

			if got := assignment.DisplayValue(); got != tt.want {
				t.Errorf("DisplayValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationErrorImplementsError(t *testing.T) {
	var err error = &models.ValidationError{Message: "boom"}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
}
