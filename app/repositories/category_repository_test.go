package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/repositories"
)

func TestCategoryPath(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	a := newCategory("A", nil)
	b := newCategory("B", a)
	c := newCategory("C", b)
	for _, category := range []*models.Category{a, b, c} {
		if err := repo.Create(ctx, category); err != nil {
			t.Fatalf("failed to create category %s: %v", category.Name, err)
		}
	}

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"root resolves to its own name", a.ID, "A"},
		{"middle of the chain", b.ID, "A > B"},
		{"three level chain", c.ID, "A > B > C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Path(ctx, tt.id)
			if err != nil {
				t.Fatalf("Path() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryCycleGuard(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	a := newCategory("A", nil)
	b := newCategory("B", a)
	for _, category := range []*models.Category{a, b} {
		if err := repo.Create(ctx, category); err != nil {
			t.Fatalf("failed to create category %s: %v", category.Name, err)
		}
	}

	t.Run("self parent is rejected", func(t *testing.T) {
		a.ParentID = &a.ID
		err := repo.Update(ctx, a)
		if !errors.Is(err, repositories.ErrCategoryCycle) {
			t.Fatalf("Update() error = %v, want ErrCategoryCycle", err)
		}
		a.ParentID = nil
	})

	t.Run("two node loop is rejected", func(t *testing.T) {
		a.ParentID = &b.ID
		err := repo.Update(ctx, a)
		if !errors.Is(err, repositories.ErrCategoryCycle) {
			t.Fatalf("Update() error = %v, want ErrCategoryCycle", err)
		}
		a.ParentID = nil
	})

	t.Run("reparenting without a loop is allowed", func(t *testing.T) {
		c := newCategory("C", nil)
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create category C: %v", err)
		}
		c.ParentID = &b.ID
		if err := repo.Update(ctx, c); err != nil {
			t.Fatalf("Update() error = %v, want nil", err)
		}

		path, err := repo.Path(ctx, c.ID)
		if err != nil {
			t.Fatalf("Path() error: %v", err)
		}
		if path != "A > B > C" {
			t.Errorf("Path() = %q, want %q", path, "A > B > C")
		}
	})
}

func TestCategoryDeleteCascadesToChildren(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	root := newCategory("Root", nil)
	child := newCategory("Child", root)
	grandchild := newCategory("Grandchild", child)
	sibling := newCategory("Sibling", nil)
	for _, category := range []*models.Category{root, child, grandchild, sibling} {
		if err := repo.Create(ctx, category); err != nil {
			t.Fatalf("failed to create category %s: %v", category.Name, err)
		}
	}

	if err := repo.Delete(ctx, root.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	for _, deleted := range []*models.Category{root, child, grandchild} {
		got, err := repo.GetByID(ctx, deleted.ID)
		if err != nil {
			t.Fatalf("GetByID(%s) error: %v", deleted.Name, err)
		}
		if got != nil {
			t.Errorf("category %s should have been deleted with the root", deleted.Name)
		}
	}

	got, err := repo.GetByID(ctx, sibling.ID)
	if err != nil {
		t.Fatalf("GetByID(sibling) error: %v", err)
	}
	if got == nil {
		t.Error("unrelated category was deleted")
	}
}

func TestCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	active := newCategory("Active", nil)
	inactive := newCategory("Inactive", nil)
	inactive.IsActive = false
	childOfActive := newCategory("Child", active)
	for _, category := range []*models.Category{active, inactive, childOfActive} {
		if err := repo.Create(ctx, category); err != nil {
			t.Fatalf("failed to create category %s: %v", category.Name, err)
		}
	}

	isActive := false
	got, err := repo.Filter(ctx, &isActive, "")
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Inactive" {
		t.Errorf("Filter(is_active=false) = %v, want only Inactive", got)
	}

	got, err = repo.Filter(ctx, nil, active.ID)
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Child" {
		t.Errorf("Filter(parent=Active) = %v, want only Child", got)
	}
}
