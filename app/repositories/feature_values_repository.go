package repositories

import (
	"context"

	"github.com/yilmazatalay/go-catalog/app/models"
	"gorm.io/gorm"
)

type FeatureValueRepositoryImpl interface {
	Create(ctx context.Context, value *models.FeatureValue) error
	GetByID(ctx context.Context, id string) (*models.FeatureValue, error)
	GetByFeature(ctx context.Context, featureID string) ([]models.FeatureValue, error)
	GetAll(ctx context.Context) ([]models.FeatureValue, error)
	Search(ctx context.Context, keyword string) ([]models.FeatureValue, error)
	Update(ctx context.Context, value *models.FeatureValue) error
	Delete(ctx context.Context, id string) error
}

type featureValueRepository struct {
	db *gorm.DB
}

func NewFeatureValueRepository(db *gorm.DB) FeatureValueRepositoryImpl {
	return &featureValueRepository{db: db}
}

func (r *featureValueRepository) Create(ctx context.Context, value *models.FeatureValue) error {
	return r.db.WithContext(ctx).Create(value).Error
}

func (r *featureValueRepository) GetByID(ctx context.Context, id string) (*models.FeatureValue, error) {
	var value models.FeatureValue
	err := r.db.WithContext(ctx).Preload("Feature").First(&value, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

func (r *featureValueRepository) GetByFeature(ctx context.Context, featureID string) ([]models.FeatureValue, error) {
	var values []models.FeatureValue
	err := r.db.WithContext(ctx).
		Preload("Feature").
		Where("feature_id = ?", featureID).
		Order("value ASC").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *featureValueRepository) GetAll(ctx context.Context) ([]models.FeatureValue, error) {
	var values []models.FeatureValue
	err := r.db.WithContext(ctx).Preload("Feature").Order("value ASC").Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *featureValueRepository) Search(ctx context.Context, keyword string) ([]models.FeatureValue, error) {
	var values []models.FeatureValue
	err := r.db.WithContext(ctx).
		Preload("Feature").
		Where("value LIKE ?", "%"+keyword+"%").
		Order("value ASC").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *featureValueRepository) Update(ctx context.Context, value *models.FeatureValue) error {
	return r.db.WithContext(ctx).Save(value).Error
}

// Delete clears value_selected on every assignment pointing at the
// value before removing it, so the assignments themselves survive.
func (r *featureValueRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.ProductFeature{}).
			Where("value_selected_id = ?", id).
			Update("value_selected_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.FeatureValue{}, "id = ?", id).Error
	})
}
