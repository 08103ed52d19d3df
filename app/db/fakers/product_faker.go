package fakers

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/yilmazatalay/go-catalog/app/models"
)

func ProductFaker() *models.Product {
	name := faker.Word() + " " + faker.Word()

	return &models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: faker.Paragraph(),
		Stock:       rand.Intn(50),
		Price:       decimal.NewFromFloat(fakePrice()).Round(2),
		Slug:        slug.Make(name + "-" + uuid.NewString()[:6]),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
