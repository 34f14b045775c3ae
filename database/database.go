package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/models"
)

// Connect establishes a connection to PostgreSQL and runs migrations.
// The returned handle is passed explicitly to every controller constructor.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.OTP{},
		&models.Category{},
		&models.Product{},
		&models.ProductAsset{},
		&models.ProductColor{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
		&models.Testimonial{},
		&models.ProductRating{},
		&models.ProductSale{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}
