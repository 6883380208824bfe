package models

import (
	"time"

	"gorm.io/gorm"
)

// DailySummary is the stored form of one last-7-days entry.
type DailySummary struct {
	Date            time.Time `json:"date"`
	ChaptersRead    int       `json:"chaptersRead"`
	ProgressPercent float64   `json:"progressPercentage"`
	Completed       bool      `json:"completed"`
}

// StatisticsSnapshot is the persisted statistics aggregate, one row per
// (user, date). A later compute for the same pair overwrites the earlier row.
type StatisticsSnapshot struct {
	gorm.Model
	UserID         uint      `gorm:"not null;uniqueIndex:idx_user_statistics_date" json:"userId"`
	StatisticsDate time.Time `gorm:"not null;uniqueIndex:idx_user_statistics_date" json:"statisticsDate"`

	TotalDaysRead     int     `json:"totalDaysRead"`
	TotalChaptersRead int     `json:"totalChaptersRead"`
	AverageProgress   float64 `json:"averageProgress"`
	PerfectDays       int     `json:"perfectDays"`
	ConsecutiveDays   int     `json:"consecutiveDays"`

	CurrentMonthDays     int     `json:"currentMonthDays"`
	CurrentMonthChapters int     `json:"currentMonthChapters"`
	CurrentMonthProgress float64 `json:"currentMonthProgress"`

	CurrentYearDays     int     `json:"currentYearDays"`
	CurrentYearChapters int     `json:"currentYearChapters"`
	CurrentYearProgress float64 `json:"currentYearProgress"`

	LongestStreak      int        `json:"longestStreak"`
	LongestStreakStart *time.Time `json:"longestStreakStart"`
	LongestStreakEnd   *time.Time `json:"longestStreakEnd"`

	Last7Days []DailySummary `gorm:"serializer:json" json:"last7Days"`
}
