package fakers

import (
	"time"

	"github.com/google/uuid"
	"github.com/yilmazatalay/go-catalog/app/models"
)

func CategoryFaker(name string, parent *models.Category) *models.Category {
	category := &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if parent != nil {
		category.ParentID = &parent.ID
	}
	return category
}
