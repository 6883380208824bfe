package utils

import (
	"fmt"

	"macchain/backend/config"
	"macchain/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection and migrates the schema.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.ProgressRecord{},
		&models.StatisticsSnapshot{},
		&models.ReadingPlan{},
		&models.VerseAnalysis{},
	)
	if err != nil {
		return nil, err
	}

	if err := SeedReadingPlans(db); err != nil {
		return nil, err
	}

	return db, nil
}
