package models

import (
	"time"

	"gorm.io/gorm"
)

// VerseAnalysis is a cached verse analysis for one chapter, refreshed daily.
// Unlike statistics snapshots it falls back to canned content when no upstream
// analysis is available.
type VerseAnalysis struct {
	gorm.Model
	Book         string    `gorm:"not null;uniqueIndex:idx_analysis_chapter_date" json:"book"`
	Chapter      int       `gorm:"not null;uniqueIndex:idx_analysis_chapter_date" json:"chapter"`
	AnalysisDate time.Time `gorm:"not null;uniqueIndex:idx_analysis_chapter_date" json:"analysisDate"`
	OriginalText string    `json:"originalText"`
	Meaning      string    `json:"meaning"`
	Background   string    `json:"background"`
	Application  string    `json:"application"`
	KeyWords     []string  `gorm:"serializer:json" json:"keyWords"`
}
