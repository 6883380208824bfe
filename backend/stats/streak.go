package stats

import "time"

// dayFlag marks one calendar day of the reconstructed window as read or not.
type dayFlag struct {
	date time.Time
	read bool
}

// StreakResult describes the longest contiguous run of read days in a window.
// Start and End are nil when no day was read.
type StreakResult struct {
	Length int
	Start  *time.Time
	End    *time.Time
}

// longestRun scans the full day-by-day sequence and returns the longest run of
// consecutive read days. Comparisons are strictly greater, so on equal length
// the earliest run is kept.
func longestRun(days []dayFlag) StreakResult {
	var best StreakResult
	var runStart time.Time
	run := 0

	for _, d := range days {
		if d.read {
			if run == 0 {
				runStart = d.date
			}
			run++
			continue
		}
		if run > best.Length {
			start := runStart
			end := d.date.AddDate(0, 0, -1)
			best = StreakResult{Length: run, Start: &start, End: &end}
		}
		run = 0
	}

	// A run still open at the end of the window ends on the window's last day.
	if run > best.Length && len(days) > 0 {
		start := runStart
		end := days[len(days)-1].date
		best = StreakResult{Length: run, Start: &start, End: &end}
	}

	return best
}
