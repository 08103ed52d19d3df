package fakers

import (
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/yilmazatalay/go-catalog/app/helpers"
	"github.com/yilmazatalay/go-catalog/app/models"
)

func UserFaker() *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		Username:  faker.Username(),
		Email:     faker.Email(),
		Password:  helpers.HashPassword("password"),
		IsStaff:   false,
		Bio:       faker.Sentence(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
