package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/repositories"
)

func newAssignment(product *models.Product, feature *models.Feature) *models.ProductFeature {
	return &models.ProductFeature{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		FeatureID: feature.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestProductFeatureCreateValidates(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductFeatureRepository(db)
	ctx := context.Background()

	color := newFeature("Color", models.InputTypeSelect, "")
	mustCreate(t, db, color)
	blue := newFeatureValue(color, "Blue")
	mustCreate(t, db, blue)
	shirt := newProduct("Shirt", "shirt")
	mustCreate(t, db, shirt)

	invalid := newAssignment(shirt, color)
	invalid.ValueCustom = "blue-ish"
	err := repo.Create(ctx, invalid)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create() error = %v, want *models.ValidationError", err)
	}
	if verr.Message != "select-type feature requires a chosen value from the list." {
		t.Errorf("unexpected message: %q", verr.Message)
	}

	// A failed create must not leave a row behind.
	var count int64
	if err := db.Model(&models.ProductFeature{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("invalid assignment was persisted, count = %d", count)
	}

	valid := newAssignment(shirt, color)
	valid.ValueSelectedID = &blue.ID
	if err := repo.Create(ctx, valid); err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
}

func TestProductFeatureUniquePerProduct(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductFeatureRepository(db)
	ctx := context.Background()

	size := newFeature("Size", models.InputTypeNumber, "cm")
	mustCreate(t, db, size)
	shirt := newProduct("Shirt", "shirt")
	jacket := newProduct("Jacket", "jacket")
	mustCreate(t, db, shirt)
	mustCreate(t, db, jacket)

	first := newAssignment(shirt, size)
	first.ValueCustom = "180"
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}

	duplicate := newAssignment(shirt, size)
	duplicate.ValueCustom = "170"
	if err := repo.Create(ctx, duplicate); !errors.Is(err, repositories.ErrDuplicateProductFeature) {
		t.Fatalf("Create() error = %v, want ErrDuplicateProductFeature", err)
	}

	// Same feature on a different product is fine.
	other := newAssignment(jacket, size)
	other.ValueCustom = "190"
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
}

func TestProductFeatureUpdateValidates(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductFeatureRepository(db)
	ctx := context.Background()

	size := newFeature("Size", models.InputTypeNumber, "cm")
	material := newFeature("Material", models.InputTypeText, "")
	mustCreate(t, db, size)
	mustCreate(t, db, material)
	shirt := newProduct("Shirt", "shirt")
	mustCreate(t, db, shirt)

	assignment := newAssignment(shirt, size)
	assignment.ValueCustom = "180"
	if err := repo.Create(ctx, assignment); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	assignment.ValueCustom = "tall"
	err := repo.Update(ctx, assignment)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Update() error = %v, want *models.ValidationError", err)
	}
	if verr.Message != "value must be a valid number." {
		t.Errorf("unexpected message: %q", verr.Message)
	}

	// Updating must not trip over the record's own uniqueness.
	assignment.ValueCustom = "185"
	if err := repo.Update(ctx, assignment); err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}

	// Moving onto an already assigned pair is still a duplicate.
	taken := newAssignment(shirt, material)
	taken.ValueCustom = "Cotton"
	if err := repo.Create(ctx, taken); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	assignment.FeatureID = material.ID
	assignment.ValueCustom = "Wool"
	if err := repo.Update(ctx, assignment); !errors.Is(err, repositories.ErrDuplicateProductFeature) {
		t.Fatalf("Update() error = %v, want ErrDuplicateProductFeature", err)
	}
}

func TestFeatureDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	featureRepo := repositories.NewFeatureRepository(db)
	assignmentRepo := repositories.NewProductFeatureRepository(db)
	ctx := context.Background()

	color := newFeature("Color", models.InputTypeSelect, "")
	mustCreate(t, db, color)
	blue := newFeatureValue(color, "Blue")
	mustCreate(t, db, blue)
	shirt := newProduct("Shirt", "shirt")
	mustCreate(t, db, shirt)

	assignment := newAssignment(shirt, color)
	assignment.ValueSelectedID = &blue.ID
	if err := assignmentRepo.Create(ctx, assignment); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := featureRepo.Delete(ctx, color.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var valueCount, assignmentCount int64
	if err := db.Model(&models.FeatureValue{}).Where("feature_id = ?", color.ID).Count(&valueCount).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if err := db.Model(&models.ProductFeature{}).Where("feature_id = ?", color.ID).Count(&assignmentCount).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if valueCount != 0 {
		t.Errorf("feature values survived the feature delete, count = %d", valueCount)
	}
	if assignmentCount != 0 {
		t.Errorf("assignments survived the feature delete, count = %d", assignmentCount)
	}
}

func TestFeatureValueDeleteClearsSelection(t *testing.T) {
	db := newTestDB(t)
	valueRepo := repositories.NewFeatureValueRepository(db)
	assignmentRepo := repositories.NewProductFeatureRepository(db)
	ctx := context.Background()

	color := newFeature("Color", models.InputTypeSelect, "")
	mustCreate(t, db, color)
	blue := newFeatureValue(color, "Blue")
	mustCreate(t, db, blue)
	shirt := newProduct("Shirt", "shirt")
	mustCreate(t, db, shirt)

	assignment := newAssignment(shirt, color)
	assignment.ValueSelectedID = &blue.ID
	if err := assignmentRepo.Create(ctx, assignment); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := valueRepo.Delete(ctx, blue.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, err := assignmentRepo.GetByID(ctx, assignment.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got == nil {
		t.Fatal("assignment was deleted together with the value")
	}
	if got.ValueSelectedID != nil {
		t.Errorf("ValueSelectedID = %q, want nil", *got.ValueSelectedID)
	}
}
