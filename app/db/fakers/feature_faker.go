package fakers

import (
	"time"

	"github.com/google/uuid"
	"github.com/yilmazatalay/go-catalog/app/models"
)

func FeatureFaker(name, inputType, unit string) *models.Feature {
	return &models.Feature{
		ID:        uuid.New().String(),
		Name:      name,
		InputType: inputType,
		Unit:      unit,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func FeatureValueFaker(feature *models.Feature, value string) *models.FeatureValue {
	return &models.FeatureValue{
		ID:        uuid.New().String(),
		FeatureID: feature.ID,
		Value:     value,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
