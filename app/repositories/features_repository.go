package repositories

import (
	"context"

	"github.com/yilmazatalay/go-catalog/app/models"
	"gorm.io/gorm"
)

type FeatureRepositoryImpl interface {
	Create(ctx context.Context, feature *models.Feature) error
	GetByID(ctx context.Context, id string) (*models.Feature, error)
	GetAll(ctx context.Context) ([]models.Feature, error)
	Search(ctx context.Context, keyword string) ([]models.Feature, error)
	Filter(ctx context.Context, inputType, unit string) ([]models.Feature, error)
	Update(ctx context.Context, feature *models.Feature) error
	Delete(ctx context.Context, id string) error
}

type featureRepository struct {
	db *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) FeatureRepositoryImpl {
	return &featureRepository{db: db}
}

func (r *featureRepository) Create(ctx context.Context, feature *models.Feature) error {
	return r.db.WithContext(ctx).Create(feature).Error
}

func (r *featureRepository) GetByID(ctx context.Context, id string) (*models.Feature, error) {
	var feature models.Feature
	err := r.db.WithContext(ctx).Preload("Values").First(&feature, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &feature, nil
}

func (r *featureRepository) GetAll(ctx context.Context) ([]models.Feature, error) {
	var features []models.Feature
	err := r.db.WithContext(ctx).Preload("Values").Order("name ASC").Find(&features).Error
	if err != nil {
		return nil, err
	}
	return features, nil
}

func (r *featureRepository) Search(ctx context.Context, keyword string) ([]models.Feature, error) {
	var features []models.Feature
	err := r.db.WithContext(ctx).
		Preload("Values").
		Where("name LIKE ?", "%"+keyword+"%").
		Order("name ASC").
		Find(&features).Error
	if err != nil {
		return nil, err
	}
	return features, nil
}

func (r *featureRepository) Filter(ctx context.Context, inputType, unit string) ([]models.Feature, error) {
	query := r.db.WithContext(ctx).Model(&models.Feature{}).Preload("Values")
	if inputType != "" {
		query = query.Where("input_type = ?", inputType)
	}
	if unit != "" {
		query = query.Where("unit = ?", unit)
	}

	var features []models.Feature
	if err := query.Order("name ASC").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

func (r *featureRepository) Update(ctx context.Context, feature *models.Feature) error {
	return r.db.WithContext(ctx).Save(feature).Error
}

// Delete removes the feature, all of its values and every product
// assignment that references it, in one transaction.
func (r *featureRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductFeature{}, "feature_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.FeatureValue{}, "feature_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Feature{}, "id = ?", id).Error
	})
}
