package utils

import (
	"macchain/backend/models"

	"gorm.io/gorm"
)

// SeedReadingPlans populates the first days of the M'Cheyne plan when the
// table is empty. The four daily tracks start at Genesis, Matthew, Ezra and
// Acts. TODO: load the remaining 355 days from the published plan data.
func SeedReadingPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ReadingPlan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for day := 1; day <= 10; day++ {
		planDay := models.ReadingPlan{
			DayNumber: day,
			Readings: []models.Reading{
				models.NewReading("genesis", day),
				models.NewReading("matthew", day),
				models.NewReading("ezra", day),
				models.NewReading("acts", day),
			},
		}
		if err := db.Create(&planDay).Error; err != nil {
			return err
		}
	}

	return nil
}
