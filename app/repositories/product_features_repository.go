package repositories

import (
	"context"
	"errors"

	"github.com/yilmazatalay/go-catalog/app/models"
	"gorm.io/gorm"
)

// ErrDuplicateProductFeature rejects a second assignment of the same
// feature to a product. The composite unique index backs this up at the
// storage level; the pre-check turns the violation into a typed error.
var ErrDuplicateProductFeature = errors.New("product already has an assignment for this feature")

type ProductFeatureRepositoryImpl interface {
	Create(ctx context.Context, assignment *models.ProductFeature) error
	GetByID(ctx context.Context, id string) (*models.ProductFeature, error)
	GetByProduct(ctx context.Context, productID string) ([]models.ProductFeature, error)
	GetAll(ctx context.Context) ([]models.ProductFeature, error)
	Filter(ctx context.Context, productID, featureID string) ([]models.ProductFeature, error)
	Update(ctx context.Context, assignment *models.ProductFeature) error
	Delete(ctx context.Context, id string) error
}

type productFeatureRepository struct {
	db *gorm.DB
}

func NewProductFeatureRepository(db *gorm.DB) ProductFeatureRepositoryImpl {
	return &productFeatureRepository{db: db}
}

// Create validates the assignment inside the write transaction: no
// invalid record becomes visible, not even transiently.
func (r *productFeatureRepository) Create(ctx context.Context, assignment *models.ProductFeature) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.ProductFeature{}).
			Where("product_id = ? AND feature_id = ?", assignment.ProductID, assignment.FeatureID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateProductFeature
		}

		var feature models.Feature
		if err := tx.First(&feature, "id = ?", assignment.FeatureID).Error; err != nil {
			return err
		}
		if verr := assignment.Validate(&feature); verr != nil {
			return verr
		}

		return tx.Create(assignment).Error
	})
}

func (r *productFeatureRepository) GetByID(ctx context.Context, id string) (*models.ProductFeature, error) {
	var assignment models.ProductFeature
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Feature").
		Preload("ValueSelected").
		First(&assignment, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *productFeatureRepository) GetByProduct(ctx context.Context, productID string) ([]models.ProductFeature, error) {
	var assignments []models.ProductFeature
	err := r.db.WithContext(ctx).
		Preload("Feature").
		Preload("ValueSelected").
		Where("product_id = ?", productID).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *productFeatureRepository) GetAll(ctx context.Context) ([]models.ProductFeature, error) {
	var assignments []models.ProductFeature
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Feature").
		Preload("ValueSelected").
		Order("created_at DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *productFeatureRepository) Filter(ctx context.Context, productID, featureID string) ([]models.ProductFeature, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductFeature{}).
		Preload("Product").
		Preload("Feature").
		Preload("ValueSelected")
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	if featureID != "" {
		query = query.Where("feature_id = ?", featureID)
	}

	var assignments []models.ProductFeature
	if err := query.Order("created_at DESC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// Update runs the same validation and uniqueness discipline as Create,
// ignoring the record's own row in the duplicate check.
func (r *productFeatureRepository) Update(ctx context.Context, assignment *models.ProductFeature) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.ProductFeature{}).
			Where("product_id = ? AND feature_id = ? AND id <> ?", assignment.ProductID, assignment.FeatureID, assignment.ID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateProductFeature
		}

		var feature models.Feature
		if err := tx.First(&feature, "id = ?", assignment.FeatureID).Error; err != nil {
			return err
		}
		if verr := assignment.Validate(&feature); verr != nil {
			return verr
		}

		return tx.Save(assignment).Error
	})
}

func (r *productFeatureRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ProductFeature{}, "id = ?", id).Error
}
