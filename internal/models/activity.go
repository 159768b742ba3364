package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityAssessment   ActivityType = "ASSESSMENT"
	ActivityQuiz         ActivityType = "QUIZ"
	ActivityPlayground   ActivityType = "PLAYGROUND"
	ActivityConcept      ActivityType = "CONCEPT"
	ActivityDailyMission ActivityType = "DAILY_MISSION"
	ActivityHackathon    ActivityType = "HACKATHON"
	ActivityJournal      ActivityType = "JOURNAL"
)

// ActivityEvent is one row of the append-only activity ledger. Streaks,
// heatmaps and trends are derived from it on demand. Rows are not
// guaranteed to arrive in chronological order; consumers must order by
// OccurredAt before counting days.
type ActivityEvent struct {
	ID     string       `gorm:"primaryKey;type:text" json:"id"`
	UserID string       `gorm:"index;not null" json:"userId"`
	Type   ActivityType `gorm:"type:text;not null" json:"type"`

	Language   string    `json:"language"`
	OccurredAt time.Time `gorm:"index" json:"occurredAt"`

	// Score is the 0-100 percentage for assessments and quizzes.
	Score *int `json:"score,omitempty"`

	// ResultID is a weak reference to a persisted detailed result.
	ResultID *string `json:"resultId,omitempty"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}

func (e *ActivityEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	return
}
