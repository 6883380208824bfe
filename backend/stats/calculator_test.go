package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, userID uint, date string, completed, total int) DailyRecord {
	t.Helper()
	return DailyRecord{
		UserID:          userID,
		Date:            day(t, date),
		CompletedCount:  completed,
		TotalCount:      total,
		ProgressPercent: float64(completed) / float64(total) * 100,
	}
}

func TestCalculateRejectsInvalidWindow(t *testing.T) {
	_, err := Calculate(1, time.Now(), 0, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = Calculate(1, time.Now(), -5, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestCalculateNoRecords(t *testing.T) {
	asOf := day(t, "2025-06-15")

	snap, err := Calculate(7, asOf, 30, nil)
	require.NoError(t, err)

	assert.Equal(t, uint(7), snap.UserID)
	assert.Equal(t, asOf, snap.AsOfDate)
	assert.Equal(t, 0, snap.TotalDaysRead)
	assert.Equal(t, 0, snap.TotalChaptersRead)
	assert.Equal(t, 0.0, snap.AverageProgress)
	assert.Equal(t, 0, snap.LongestStreak)
	assert.Nil(t, snap.LongestStreakStart)
	assert.Nil(t, snap.LongestStreakEnd)

	require.Len(t, snap.Last7Days, 7)
	for _, d := range snap.Last7Days {
		assert.Equal(t, 0, d.ChaptersRead)
		assert.Equal(t, 0.0, d.ProgressPercent)
		assert.False(t, d.Completed)
	}
}

func TestCalculateDayCountIndependentOfTotals(t *testing.T) {
	asOf := day(t, "2025-06-15")
	records := []DailyRecord{
		record(t, 1, "2025-06-13", 1, 4),
		record(t, 1, "2025-06-14", 2, 10),
		record(t, 1, "2025-06-15", 3, 3),
	}

	snap, err := Calculate(1, asOf, 30, records)
	require.NoError(t, err)

	assert.Equal(t, 3, snap.TotalDaysRead)
	assert.Equal(t, 6, snap.TotalChaptersRead)
}

func TestCalculateGapTerminatesStreak(t *testing.T) {
	asOf := day(t, "2025-06-05")
	// Records for days 1,2,3 and 5; day 4 is absent and must break the run
	records := []DailyRecord{
		record(t, 1, "2025-06-01", 4, 4),
		record(t, 1, "2025-06-02", 4, 4),
		record(t, 1, "2025-06-03", 4, 4),
		record(t, 1, "2025-06-05", 4, 4),
	}

	snap, err := Calculate(1, asOf, 30, records)
	require.NoError(t, err)

	assert.Equal(t, 3, snap.LongestStreak)
	assert.Equal(t, 3, snap.ConsecutiveDays)
	require.NotNil(t, snap.LongestStreakStart)
	assert.Equal(t, day(t, "2025-06-01"), *snap.LongestStreakStart)
	assert.Equal(t, day(t, "2025-06-03"), *snap.LongestStreakEnd)
}

func TestCalculateAverageExcludesAbsentDays(t *testing.T) {
	asOf := day(t, "2025-06-15")
	// Two records in a 30-day window: 100% and 50%. Absent days do not drag
	// the average down, but a recorded zero day does.
	records := []DailyRecord{
		record(t, 1, "2025-06-10", 4, 4),
		record(t, 1, "2025-06-11", 2, 4),
	}

	snap, err := Calculate(1, asOf, 30, records)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, snap.AverageProgress, 1e-9)

	withZero := append(records, record(t, 1, "2025-06-12", 0, 4))
	snap, err = Calculate(1, asOf, 30, withZero)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, snap.AverageProgress, 1e-9)
	// The recorded zero day still does not count as a read day
	assert.Equal(t, 2, snap.TotalDaysRead)
}

func TestCalculateTenPerfectDaysEndingToday(t *testing.T) {
	asOf := day(t, "2025-06-15")
	var records []DailyRecord
	for i := 9; i >= 0; i-- {
		records = append(records, record(t, 1, asOf.AddDate(0, 0, -i).Format("2006-01-02"), 4, 4))
	}

	snap, err := Calculate(1, asOf, 30, records)
	require.NoError(t, err)

	assert.Equal(t, 10, snap.PerfectDays)
	assert.Equal(t, 10, snap.LongestStreak)
	require.NotNil(t, snap.LongestStreakEnd)
	assert.Equal(t, asOf, *snap.LongestStreakEnd)
}

func TestCalculateMonthYearTruncatedToWindow(t *testing.T) {
	// asOf early in a month: the window spans the month boundary and the
	// month figures only see the days inside the current month
	asOf := day(t, "2025-06-03")
	records := []DailyRecord{
		record(t, 1, "2025-05-30", 4, 4),
		record(t, 1, "2025-05-31", 2, 4),
		record(t, 1, "2025-06-01", 4, 4),
		record(t, 1, "2025-06-02", 1, 4),
	}

	snap, err := Calculate(1, asOf, 30, records)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.CurrentMonthDays)
	assert.Equal(t, 5, snap.CurrentMonthChapters)
	assert.InDelta(t, 62.5, snap.CurrentMonthProgress, 1e-9)

	// Year figures include the May days: all four records are in 2025
	assert.Equal(t, 4, snap.CurrentYearDays)
	assert.Equal(t, 11, snap.CurrentYearChapters)
}

func TestCalculateLast7DaysSeries(t *testing.T) {
	asOf := day(t, "2025-06-15")
	records := []DailyRecord{
		record(t, 1, "2025-06-13", 2, 4),
		record(t, 1, "2025-06-15", 4, 4),
	}

	snap, err := Calculate(1, asOf, 30, records)
	require.NoError(t, err)

	require.Len(t, snap.Last7Days, 7)
	assert.Equal(t, day(t, "2025-06-09"), snap.Last7Days[0].Date)
	assert.Equal(t, asOf, snap.Last7Days[6].Date)

	assert.Equal(t, 2, snap.Last7Days[4].ChaptersRead)
	assert.InDelta(t, 50.0, snap.Last7Days[4].ProgressPercent, 1e-9)
	assert.False(t, snap.Last7Days[4].Completed)

	assert.Equal(t, 4, snap.Last7Days[6].ChaptersRead)
	assert.True(t, snap.Last7Days[6].Completed)

	// Absent days are zero-filled
	assert.Equal(t, 0, snap.Last7Days[5].ChaptersRead)
	assert.False(t, snap.Last7Days[5].Completed)
}

func TestCalculateIdempotent(t *testing.T) {
	asOf := day(t, "2025-06-15")
	records := []DailyRecord{
		record(t, 1, "2025-06-10", 4, 4),
		record(t, 1, "2025-06-12", 1, 4),
		record(t, 1, "2025-06-15", 3, 4),
	}

	first, err := Calculate(1, asOf, 30, records)
	require.NoError(t, err)
	second, err := Calculate(1, asOf, 30, records)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
