package config

import (
	"fmt"

	"github.com/Keerthana-08/GemNest/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared database handle
var DB *gorm.DB

// InitDB opens the Postgres connection and migrates the schema
func InitDB() {
	cfg := AppConfig
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Banner{},
		&models.Review{},
		&models.UserOTP{},
		&models.Cart{},
		&models.Wishlist{},
		&models.Offer{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
