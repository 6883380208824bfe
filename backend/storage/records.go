// Package storage implements the statistics engine's collaborator interfaces
// on top of gorm.
package storage

import (
	"context"
	"time"

	"macchain/backend/models"
	"macchain/backend/stats"

	"gorm.io/gorm"
)

// RecordStore reads per-day progress rows for the statistics engine.
type RecordStore struct {
	DB *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{DB: db}
}

// ListRecords returns the existing progress records for the closed date range,
// ascending by date. Days without a row are simply absent.
func (s *RecordStore) ListRecords(ctx context.Context, userID uint, from, to time.Time) ([]stats.DailyRecord, error) {
	var rows []models.ProgressRecord
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND reading_date BETWEEN ? AND ?", userID, from, to).
		Order("reading_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]stats.DailyRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, stats.DailyRecord{
			UserID:          row.UserID,
			Date:            stats.DateOnly(row.ReadingDate),
			CompletedCount:  row.CompletedCount,
			TotalCount:      row.TotalCount,
			ProgressPercent: row.ProgressPercent,
		})
	}
	return records, nil
}
