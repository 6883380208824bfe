package stats

import "time"

// DateOnly truncates t to its calendar day in UTC. All dates handled by the
// engine are normalized this way so they compare with ==.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func sameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}
