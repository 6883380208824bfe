package models

import (
	"time"

	"gorm.io/gorm"
)

// ReadingProgress is the completion state of one reading item (book + chapter)
// inside a day's plan.
type ReadingProgress struct {
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Completed bool   `json:"completed"`
}

// ProgressRecord is one calendar day of reading activity for one user. It is
// created on the first progress update of the day and mutated in place while
// that day lasts; past days are read-only history.
type ProgressRecord struct {
	gorm.Model
	UserID          uint              `gorm:"not null;uniqueIndex:idx_user_reading_date" json:"userId"`
	ReadingDate     time.Time         `gorm:"not null;uniqueIndex:idx_user_reading_date" json:"readingDate"`
	DayNumber       int               `json:"dayNumber"`
	Readings        []ReadingProgress `gorm:"serializer:json" json:"readings"`
	CompletedCount  int               `gorm:"default:0" json:"completedReadings"`
	TotalCount      int               `gorm:"not null" json:"totalReadings"`
	ProgressPercent float64           `gorm:"default:0" json:"progressPercentage"`
}

// MarkReading applies one complete/incomplete toggle, clamped to
// [0, TotalCount], and recomputes the percentage.
func (p *ProgressRecord) MarkReading(completed bool) {
	if completed {
		if p.CompletedCount < p.TotalCount {
			p.CompletedCount++
		}
	} else {
		if p.CompletedCount > 0 {
			p.CompletedCount--
		}
	}
	p.RecalculatePercent()
}

// RecalculatePercent refreshes ProgressPercent from the counts. Call it after
// any change to CompletedCount or TotalCount.
func (p *ProgressRecord) RecalculatePercent() {
	if p.TotalCount <= 0 {
		p.ProgressPercent = 0
		return
	}
	p.ProgressPercent = float64(p.CompletedCount) / float64(p.TotalCount) * 100
}
