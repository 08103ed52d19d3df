package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/models/migrations"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A second pooled connection would see its own empty in-memory
	// database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newCategory(name string, parent *models.Category) *models.Category {
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

func newFeature(name, inputType, unit string) *models.Feature {
	return &models.Feature{
		ID:        uuid.New().String(),
		Name:      name,
		InputType: inputType,
		Unit:      unit,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newFeatureValue(feature *models.Feature, value string) *models.FeatureValue {
	return &models.FeatureValue{
		ID:        uuid.New().String(),
		FeatureID: feature.ID,
		Value:     value,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newProduct(name, slug string) *models.Product {
	return &models.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.WithContext(context.Background()).Create(value).Error; err != nil {
		t.Fatalf("failed to create fixture %T: %v", value, err)
	}
}
