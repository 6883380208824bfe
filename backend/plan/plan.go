// Package plan holds the M'Cheyne reading-plan day arithmetic.
package plan

import (
	"fmt"
	"time"
)

// TotalDays is the length of one full plan cycle.
const TotalDays = 365

// DayFor maps a calendar date to its plan day number. The plan restarts on
// January 1st; a day past the cycle length (leap-year day 366) wraps to 1.
// Calendar-day arithmetic, so a DST transition in the date's zone cannot
// shift the result.
func DayFor(date time.Time) int {
	dayOfYear := date.YearDay()

	if dayOfYear > TotalDays {
		return (dayOfYear-1)%TotalDays + 1
	}
	return dayOfYear
}

// ValidateDay rejects day numbers outside the plan cycle.
func ValidateDay(day int) error {
	if day < 1 || day > TotalDays {
		return fmt.Errorf("plan: day number must be between 1 and %d, got %d", TotalDays, day)
	}
	return nil
}
