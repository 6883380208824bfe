package storage

import (
	"context"
	"errors"
	"time"

	"macchain/backend/models"
	"macchain/backend/stats"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotStore persists statistics snapshots, one row per (user, date).
type SnapshotStore struct {
	DB *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{DB: db}
}

func (s *SnapshotStore) Get(ctx context.Context, userID uint, date time.Time) (*stats.Snapshot, error) {
	var row models.StatisticsSnapshot
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND statistics_date = ?", userID, stats.DateOnly(date)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stats.ErrSnapshotNotFound
		}
		return nil, err
	}
	snap := toSnapshot(row)
	return &snap, nil
}

// Put overwrites any existing row for the snapshot's (user, date) pair.
func (s *SnapshotStore) Put(ctx context.Context, snap *stats.Snapshot) error {
	row := toRow(snap)
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "statistics_date"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func (s *SnapshotStore) Delete(ctx context.Context, userID uint, date time.Time) error {
	return s.DB.WithContext(ctx).
		Where("user_id = ? AND statistics_date = ?", userID, stats.DateOnly(date)).
		Delete(&models.StatisticsSnapshot{}).Error
}

func (s *SnapshotStore) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]stats.Snapshot, error) {
	var rows []models.StatisticsSnapshot
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND statistics_date BETWEEN ? AND ?", userID, stats.DateOnly(from), stats.DateOnly(to)).
		Order("statistics_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	snaps := make([]stats.Snapshot, 0, len(rows))
	for _, row := range rows {
		snaps = append(snaps, toSnapshot(row))
	}
	return snaps, nil
}

func toRow(snap *stats.Snapshot) models.StatisticsSnapshot {
	last7 := make([]models.DailySummary, 0, len(snap.Last7Days))
	for _, d := range snap.Last7Days {
		last7 = append(last7, models.DailySummary{
			Date:            d.Date,
			ChaptersRead:    d.ChaptersRead,
			ProgressPercent: d.ProgressPercent,
			Completed:       d.Completed,
		})
	}

	return models.StatisticsSnapshot{
		UserID:               snap.UserID,
		StatisticsDate:       snap.AsOfDate,
		TotalDaysRead:        snap.TotalDaysRead,
		TotalChaptersRead:    snap.TotalChaptersRead,
		AverageProgress:      snap.AverageProgress,
		PerfectDays:          snap.PerfectDays,
		ConsecutiveDays:      snap.ConsecutiveDays,
		CurrentMonthDays:     snap.CurrentMonthDays,
		CurrentMonthChapters: snap.CurrentMonthChapters,
		CurrentMonthProgress: snap.CurrentMonthProgress,
		CurrentYearDays:      snap.CurrentYearDays,
		CurrentYearChapters:  snap.CurrentYearChapters,
		CurrentYearProgress:  snap.CurrentYearProgress,
		LongestStreak:        snap.LongestStreak,
		LongestStreakStart:   snap.LongestStreakStart,
		LongestStreakEnd:     snap.LongestStreakEnd,
		Last7Days:            last7,
	}
}

func toSnapshot(row models.StatisticsSnapshot) stats.Snapshot {
	last7 := make([]stats.DaySummary, 0, len(row.Last7Days))
	for _, d := range row.Last7Days {
		last7 = append(last7, stats.DaySummary{
			Date:            d.Date,
			ChaptersRead:    d.ChaptersRead,
			ProgressPercent: d.ProgressPercent,
			Completed:       d.Completed,
		})
	}

	return stats.Snapshot{
		UserID:               row.UserID,
		AsOfDate:             stats.DateOnly(row.StatisticsDate),
		TotalDaysRead:        row.TotalDaysRead,
		TotalChaptersRead:    row.TotalChaptersRead,
		AverageProgress:      row.AverageProgress,
		PerfectDays:          row.PerfectDays,
		ConsecutiveDays:      row.ConsecutiveDays,
		CurrentMonthDays:     row.CurrentMonthDays,
		CurrentMonthChapters: row.CurrentMonthChapters,
		CurrentMonthProgress: row.CurrentMonthProgress,
		CurrentYearDays:      row.CurrentYearDays,
		CurrentYearChapters:  row.CurrentYearChapters,
		CurrentYearProgress:  row.CurrentYearProgress,
		LongestStreak:        row.LongestStreak,
		LongestStreakStart:   row.LongestStreakStart,
		LongestStreakEnd:     row.LongestStreakEnd,
		Last7Days:            last7,
	}
}
