package stats

import "time"

// Calculate turns the ordered record set for the trailing window ending at
// asOfDate into one Snapshot. It is pure: identical inputs always produce an
// identical snapshot.
//
// Records must be ascending by date and fall inside
// [asOfDate-windowDays+1, asOfDate]. Dates without a record are implicit
// zero-activity days; the full day sequence is rebuilt before streak analysis
// because a gap terminates a streak.
func Calculate(userID uint, asOfDate time.Time, windowDays int, records []DailyRecord) (Snapshot, error) {
	if windowDays <= 0 {
		return Snapshot{}, ErrInvalidWindow
	}

	asOfDate = DateOnly(asOfDate)
	snap := Snapshot{
		UserID:     userID,
		AsOfDate:   asOfDate,
		WindowDays: windowDays,
	}

	byDate := make(map[time.Time]DailyRecord, len(records))
	for _, r := range records {
		byDate[DateOnly(r.Date)] = r
	}

	start := asOfDate.AddDate(0, 0, -(windowDays - 1))
	days := make([]dayFlag, 0, windowDays)
	for d := start; !d.After(asOfDate); d = d.AddDate(0, 0, 1) {
		rec, ok := byDate[d]
		days = append(days, dayFlag{date: d, read: ok && rec.Read()})
	}

	calculateBasic(&snap, records)
	calculatePeriods(&snap, records, asOfDate)

	streak := longestRun(days)
	snap.ConsecutiveDays = streak.Length
	snap.LongestStreak = streak.Length
	snap.LongestStreakStart = streak.Start
	snap.LongestStreakEnd = streak.End

	snap.Last7Days = last7Days(asOfDate, byDate)

	return snap, nil
}

func calculateBasic(snap *Snapshot, records []DailyRecord) {
	totalProgress := 0.0
	for _, r := range records {
		if r.Read() {
			snap.TotalDaysRead++
			snap.TotalChaptersRead += r.CompletedCount
			totalProgress += r.ProgressPercent
		}
		if r.ProgressPercent >= 100.0 {
			snap.PerfectDays++
		}
	}
	// Days with no record at all are excluded from the average; a recorded
	// zero day still counts in the denominator.
	if len(records) > 0 {
		snap.AverageProgress = totalProgress / float64(len(records))
	}
}

// calculatePeriods re-filters the same window by calendar month and year.
// Because the window is only 30 days these figures are truncated to at most the
// window's span; that matches the upstream behavior and must not be widened.
func calculatePeriods(snap *Snapshot, records []DailyRecord, asOfDate time.Time) {
	monthProgress, yearProgress := 0.0, 0.0

	for _, r := range records {
		if !r.Read() {
			continue
		}
		if sameMonth(r.Date, asOfDate) {
			snap.CurrentMonthDays++
			snap.CurrentMonthChapters += r.CompletedCount
			monthProgress += r.ProgressPercent
		}
		if sameYear(r.Date, asOfDate) {
			snap.CurrentYearDays++
			snap.CurrentYearChapters += r.CompletedCount
			yearProgress += r.ProgressPercent
		}
	}

	if snap.CurrentMonthDays > 0 {
		snap.CurrentMonthProgress = monthProgress / float64(snap.CurrentMonthDays)
	}
	if snap.CurrentYearDays > 0 {
		snap.CurrentYearProgress = yearProgress / float64(snap.CurrentYearDays)
	}
}

func last7Days(asOfDate time.Time, byDate map[time.Time]DailyRecord) []DaySummary {
	series := make([]DaySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		date := asOfDate.AddDate(0, 0, -i)
		summary := DaySummary{Date: date}
		if rec, ok := byDate[date]; ok {
			summary.ChaptersRead = rec.CompletedCount
			summary.ProgressPercent = rec.ProgressPercent
			summary.Completed = rec.ProgressPercent >= 100.0
		}
		series = append(series, summary)
	}
	return series
}
