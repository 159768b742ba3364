package models

import (
	"time"

	"gorm.io/gorm"
)

// Question is a daily-mission bank entry. The bank is small and stable; the
// mission service picks deterministically per (dateKey, language) so every
// session of a user sees the same question on a given day.
type Question struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Difficulty  string `gorm:"default:'MEDIUM'" json:"difficulty"` // EASY, MEDIUM, HARD
	Category    string `json:"category"`

	Language    string `gorm:"index" json:"language"`
	StarterCode string `gorm:"type:text" json:"starterCode"`
	TestCases   string `gorm:"type:text" json:"testCases"` // JSON array of {input, expected}
	TimeLimit   int    `gorm:"default:2" json:"timeLimit"` // seconds
	MemoryLimit int    `gorm:"default:128" json:"memoryLimit"` // MB
}

func (Question) TableName() string {
	return "questions"
}

// TestCase is the decoded form of Question.TestCases.
type TestCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}
