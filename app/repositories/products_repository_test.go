package repositories_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/repositories"
)

func TestProductSlugUnique(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	ctx := context.Background()

	first := newProduct("Shirt", "shirt")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	clash := newProduct("Other Shirt", "shirt")
	if err := repo.Create(ctx, clash); err == nil {
		t.Fatal("Create() with a taken slug succeeded, want error")
	}

	got, err := repo.GetBySlug(ctx, "shirt")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Errorf("GetBySlug() = %v, want the original product", got)
	}
}

func TestProductFilterByPrice(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	ctx := context.Background()

	cheap := newProduct("Socks", "socks")
	cheap.Price = decimal.NewFromFloat(9.90)
	mid := newProduct("Shirt", "shirt")
	mid.Price = decimal.NewFromFloat(49.90)
	dear := newProduct("Jacket", "jacket")
	dear.Price = decimal.NewFromFloat(199.90)
	for _, product := range []*models.Product{cheap, mid, dear} {
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("Create(%s) error = %v", product.Name, err)
		}
	}

	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(100)
	got, err := repo.Filter(ctx, repositories.ProductFilter{MinPrice: &min, MaxPrice: &max})
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Shirt" {
		t.Errorf("Filter() = %v, want only Shirt", got)
	}
}

func TestProductDeleteRemovesAssignments(t *testing.T) {
	db := newTestDB(t)
	productRepo := repositories.NewProductRepository(db)
	assignmentRepo := repositories.NewProductFeatureRepository(db)
	ctx := context.Background()

	material := newFeature("Material", models.InputTypeText, "")
	mustCreate(t, db, material)
	shirt := newProduct("Shirt", "shirt")
	mustCreate(t, db, shirt)

	assignment := newAssignment(shirt, material)
	assignment.ValueCustom = "Cotton"
	if err := assignmentRepo.Create(ctx, assignment); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := productRepo.Delete(ctx, shirt.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var count int64
	if err := db.Model(&models.ProductFeature{}).Where("product_id = ?", shirt.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("assignments survived the product delete, count = %d", count)
	}
}
