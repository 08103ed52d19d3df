package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"github.com/yilmazatalay/go-catalog/app/configs"
	"github.com/yilmazatalay/go-catalog/app/db/seeders"
	"github.com/yilmazatalay/go-catalog/app/helpers"
	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/models/migrations"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the database with sample catalog data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(ctx, db); err != nil {
						return err
					}
					log.Println("Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session and CSRF keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create a staff user that can sign in to the admin panel",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}

					hashed := helpers.HashPassword(c.String("password"))
					if hashed == "" {
						return fmt.Errorf("failed to hash password")
					}

					user := &models.User{
						ID:        uuid.New().String(),
						Username:  c.String("username"),
						Email:     c.String("email"),
						Password:  hashed,
						IsStaff:   true,
						CreatedAt: time.Now(),
						UpdatedAt: time.Now(),
					}
					if err := db.WithContext(ctx).Create(user).Error; err != nil {
						return err
					}
					log.Printf("Staff user %s created", user.Username)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
