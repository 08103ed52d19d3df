package migrations

import (
	"github.com/yilmazatalay/go-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Feature{}, &models.FeatureValue{}, &models.ProductFeature{})
}
