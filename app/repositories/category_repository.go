package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/yilmazatalay/go-catalog/app/models"
	"gorm.io/gorm"
)

// ErrCategoryCycle rejects a parent assignment whose chain would loop
// back to the category itself. The path resolver walks parent links
// without a guard, so cycles must never reach storage.
var ErrCategoryCycle = errors.New("category parent chain forms a cycle")

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetRoots(ctx context.Context) ([]models.Category, error)
	Search(ctx context.Context, keyword string) ([]models.Category, error)
	Filter(ctx context.Context, isActive *bool, parentID string) ([]models.Category, error)
	Path(ctx context.Context, id string) (string, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.guardCycle(ctx, category.ID, category.ParentID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Parent").First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Preload("Parent").Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetRoots(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("parent_id IS NULL").Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Search(ctx context.Context, keyword string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Where("name LIKE ?", "%"+keyword+"%").
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Filter(ctx context.Context, isActive *bool, parentID string) ([]models.Category, error) {
	query := r.db.WithContext(ctx).Model(&models.Category{}).Preload("Parent")
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if parentID != "" {
		query = query.Where("parent_id = ?", parentID)
	}

	var categories []models.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Path resolves the full ancestor chain of a category, root to leaf,
// joined by " > ". A category without a parent resolves to its own name.
func (r *categoryRepository) Path(ctx context.Context, id string) (string, error) {
	var names []string

	current := &id
	for current != nil {
		var category models.Category
		if err := r.db.WithContext(ctx).First(&category, "id = ?", *current).Error; err != nil {
			return "", err
		}
		names = append(names, category.Name)
		current = category.ParentID
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, " > "), nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.guardCycle(ctx, category.ID, category.ParentID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category and all of its descendants in one
// transaction.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteCategoryTree(tx, id)
	})
}

func deleteCategoryTree(tx *gorm.DB, id string) error {
	var children []models.Category
	if err := tx.Select("id").Find(&children, "parent_id = ?", id).Error; err != nil {
		return err
	}
	for _, child := range children {
		if err := deleteCategoryTree(tx, child.ID); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) guardCycle(ctx context.Context, categoryID string, parentID *string) error {
	seen := map[string]bool{categoryID: true}

	for parentID != nil {
		if seen[*parentID] {
			return ErrCategoryCycle
		}
		seen[*parentID] = true

		var parent models.Category
		err := r.db.WithContext(ctx).Select("id", "parent_id").First(&parent, "id = ?", *parentID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		parentID = parent.ParentID
	}
	return nil
}
