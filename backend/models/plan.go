package models

import (
	"strings"

	"gorm.io/gorm"
)

// Reading is one reading item of a plan day.
type Reading struct {
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Testament string `json:"testament"` // old, new, unknown
}

// ReadingPlan is one day of the M'Cheyne reading plan: four readings per day,
// day numbers 1..365.
type ReadingPlan struct {
	gorm.Model
	DayNumber int       `gorm:"uniqueIndex;not null" json:"dayNumber"`
	Readings  []Reading `gorm:"serializer:json" json:"readings"`
}

// ReadingsPerDay is fixed by the M'Cheyne plan.
const ReadingsPerDay = 4

// IsValid reports whether the plan day carries its full set of readings.
func (p *ReadingPlan) IsValid() bool {
	return len(p.Readings) == ReadingsPerDay
}

var oldTestamentBooks = map[string]bool{
	"genesis": true, "exodus": true, "leviticus": true, "numbers": true,
	"deuteronomy": true, "joshua": true, "judges": true, "ruth": true,
	"1samuel": true, "2samuel": true, "1kings": true, "2kings": true,
	"1chronicles": true, "2chronicles": true, "ezra": true, "nehemiah": true,
	"esther": true, "job": true, "psalms": true, "proverbs": true,
	"ecclesiastes": true, "songofsongs": true, "isaiah": true, "jeremiah": true,
	"lamentations": true, "ezekiel": true, "daniel": true, "hosea": true,
	"joel": true, "amos": true, "obadiah": true, "jonah": true, "micah": true,
	"nahum": true, "habakkuk": true, "zephaniah": true, "haggai": true,
	"zechariah": true, "malachi": true,
}

var newTestamentBooks = map[string]bool{
	"matthew": true, "mark": true, "luke": true, "john": true, "acts": true,
	"romans": true, "1corinthians": true, "2corinthians": true,
	"galatians": true, "ephesians": true, "philippians": true,
	"colossians": true, "1thessalonians": true, "2thessalonians": true,
	"1timothy": true, "2timothy": true, "titus": true, "philemon": true,
	"hebrews": true, "james": true, "1peter": true, "2peter": true,
	"1john": true, "2john": true, "3john": true, "jude": true,
	"revelation": true,
}

// TestamentFor classifies a book name as old or new testament.
func TestamentFor(book string) string {
	key := strings.ToLower(strings.ReplaceAll(book, " ", ""))
	switch {
	case oldTestamentBooks[key]:
		return "old"
	case newTestamentBooks[key]:
		return "new"
	default:
		return "unknown"
	}
}

// NewReading builds a reading item with its testament derived from the book.
func NewReading(book string, chapter int) Reading {
	return Reading{Book: book, Chapter: chapter, Testament: TestamentFor(book)}
}
