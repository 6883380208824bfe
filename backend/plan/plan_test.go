package plan

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayFor(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	cases := []struct {
		name string
		date time.Time
		want int
	}{
		{"january first", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"mid january", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 15},
		{"december 31", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 365},
		{"leap year december 31 wraps", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 1},
		{"leap year march 1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 61},
		// Server-local time past a spring-forward transition must not drift
		{"dst zone after spring forward", time.Date(2025, 7, 1, 0, 0, 0, 0, newYork), 182},
		{"dst zone before transition", time.Date(2025, 2, 1, 0, 0, 0, 0, newYork), 32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DayFor(tc.date))
		})
	}
}

func TestValidateDay(t *testing.T) {
	assert.NoError(t, ValidateDay(1))
	assert.NoError(t, ValidateDay(365))
	assert.Error(t, ValidateDay(0))
	assert.Error(t, ValidateDay(366))
	assert.Error(t, ValidateDay(-3))
}
