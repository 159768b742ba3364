package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentResult stores the detailed outcome of a judged assessment.
// ActivityEvent.ResultID points here as a weak reference (lookup only).
type AssessmentResult struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	Language   string `json:"language"`
	Difficulty string `json:"difficulty"`
	Code       string `gorm:"type:text" json:"code"`

	Score       int    `json:"score"` // 0-100
	TestsPassed int    `json:"testsPassed"`
	TestsTotal  int    `json:"testsTotal"`
	Verdict     string `json:"verdict"`
	Error       string `gorm:"type:text" json:"error,omitempty"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}

func (r *AssessmentResult) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

// HackathonResult records participation in a hackathon event.
type HackathonResult struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	HackathonName string `json:"hackathonName"`
	Position      int    `json:"position"` // 0 = participated, unranked
	ProjectName   string `json:"projectName"`
}

func (HackathonResult) TableName() string {
	return "hackathon_results"
}

func (h *HackathonResult) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return
}
