package seeders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yilmazatalay/go-catalog/app/db/fakers"
	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/repositories"
	"gorm.io/gorm"
)

// DBSeed fills an empty database with a small but complete catalog:
// users, a three-level category tree, typed features with their
// options, products and validated feature assignments.
func DBSeed(ctx context.Context, db *gorm.DB) error {
	for i := 0; i < 3; i++ {
		if err := db.WithContext(ctx).Create(fakers.UserFaker()).Error; err != nil {
			return err
		}
	}

	clothing := fakers.CategoryFaker("Clothing", nil)
	men := fakers.CategoryFaker("Men", clothing)
	shirts := fakers.CategoryFaker("Shirts", men)
	for _, category := range []*models.Category{clothing, men, shirts} {
		if err := db.WithContext(ctx).Create(category).Error; err != nil {
			return err
		}
	}

	color := fakers.FeatureFaker("Color", models.InputTypeSelect, "")
	size := fakers.FeatureFaker("Size", models.InputTypeNumber, "cm")
	material := fakers.FeatureFaker("Material", models.InputTypeText, "")
	for _, feature := range []*models.Feature{color, size, material} {
		if err := db.WithContext(ctx).Create(feature).Error; err != nil {
			return err
		}
	}

	var blue *models.FeatureValue
	for _, value := range []string{"Red", "Blue", "Green"} {
		featureValue := fakers.FeatureValueFaker(color, value)
		if err := db.WithContext(ctx).Create(featureValue).Error; err != nil {
			return err
		}
		if value == "Blue" {
			blue = featureValue
		}
	}

	products := make([]*models.Product, 0, 3)
	for i := 0; i < 3; i++ {
		product := fakers.ProductFaker()
		if err := db.WithContext(ctx).Create(product).Error; err != nil {
			return err
		}
		products = append(products, product)
	}

	// Assignments go through the repository so the same validation path
	// as the admin panel applies.
	assignmentRepo := repositories.NewProductFeatureRepository(db)
	assignments := []*models.ProductFeature{
		{
			ID:              uuid.New().String(),
			ProductID:       products[0].ID,
			FeatureID:       color.ID,
			ValueSelectedID: &blue.ID,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		},
		{
			ID:          uuid.New().String(),
			ProductID:   products[0].ID,
			FeatureID:   size.ID,
			ValueCustom: "180",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
		{
			ID:          uuid.New().String(),
			ProductID:   products[1].ID,
			FeatureID:   material.ID,
			ValueCustom: "Cotton",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
	for _, assignment := range assignments {
		if err := assignmentRepo.Create(ctx, assignment); err != nil {
			return err
		}
	}

	return nil
}
