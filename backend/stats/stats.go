// Package stats computes per-user reading statistics (rolling totals, streaks,
// last-7-day series) from daily progress records and caches one snapshot per
// user per day.
package stats

import (
	"errors"
	"time"
)

// DefaultWindowDays is the trailing window a snapshot is computed over.
const DefaultWindowDays = 30

var (
	ErrInvalidWindow     = errors.New("stats: trailing window must be positive")
	ErrSourceUnavailable = errors.New("stats: progress record source unavailable")
	ErrStoreUnavailable  = errors.New("stats: snapshot store unavailable")
	ErrSnapshotNotFound  = errors.New("stats: snapshot not found")
)

// DailyRecord is one calendar day of reading activity for one user.
// A day with no record counts as zero activity.
type DailyRecord struct {
	UserID          uint      `json:"userId"`
	Date            time.Time `json:"date"`
	CompletedCount  int       `json:"completedCount"`
	TotalCount      int       `json:"totalCount"`
	ProgressPercent float64   `json:"progressPercent"`
}

// Read reports whether any reading happened that day.
func (r DailyRecord) Read() bool {
	return r.CompletedCount > 0
}

// DaySummary is one entry of the last-7-days series.
type DaySummary struct {
	Date            time.Time `json:"date"`
	ChaptersRead    int       `json:"chaptersRead"`
	ProgressPercent float64   `json:"progressPercentage"`
	Completed       bool      `json:"completed"`
}

// Snapshot is a computed, point-in-time aggregate for one user. It is a value:
// once returned to a caller it is never mutated.
type Snapshot struct {
	UserID     uint      `json:"userId"`
	AsOfDate   time.Time `json:"statisticsDate"`
	WindowDays int       `json:"-"`

	TotalDaysRead     int     `json:"totalDaysRead"`
	TotalChaptersRead int     `json:"totalChaptersRead"`
	AverageProgress   float64 `json:"averageProgress"`
	PerfectDays       int     `json:"perfectDays"`
	// ConsecutiveDays is the longest run of read days found within the
	// trailing window, not the streak currently active ending today.
	ConsecutiveDays int `json:"consecutiveDays"`

	CurrentMonthDays     int     `json:"currentMonthDays"`
	CurrentMonthChapters int     `json:"currentMonthChapters"`
	CurrentMonthProgress float64 `json:"currentMonthProgress"`

	CurrentYearDays     int     `json:"currentYearDays"`
	CurrentYearChapters int     `json:"currentYearChapters"`
	CurrentYearProgress float64 `json:"currentYearProgress"`

	LongestStreak      int        `json:"longestStreak"`
	LongestStreakStart *time.Time `json:"longestStreakStart"`
	LongestStreakEnd   *time.Time `json:"longestStreakEnd"`

	Last7Days []DaySummary `json:"last7Days"`
}
