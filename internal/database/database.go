package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/beauxarts/marketplace-api/internal/config"
	"github.com/beauxarts/marketplace-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the shared connection pool. The returned handle is created
// once in main and passed to every service.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// Migrate runs AutoMigrate for every marketplace model.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Artwork{}, "Categories", &models.ArtworkCategory{}); err != nil {
		return fmt.Errorf("setup artwork categories join table: %w", err)
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Artist{},
		&models.Category{},
		&models.Artwork{},
		&models.ArtworkCategory{},
		&models.ShippingAddress{},
		&models.Order{},
		&models.OrderItem{},
		&models.SystemLog{},
	)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
