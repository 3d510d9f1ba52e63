package database

import (
	"fmt"

	"casaflow/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(config models.DatabaseConfiguration) *gorm.DB {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		config.Host, config.User, config.Password, config.Name, config.Port, sslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Tenant{},
		&models.Lease{},
		&models.MaintenanceRequest{},
		&models.WaitlistEntry{},
		&models.WaitlistAttempt{},
	)
	if err != nil {
		zap.L().Fatal("Failed to run migrations", zap.Error(err))
	}

	return db
}
