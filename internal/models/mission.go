package models

import "time"

// DailyMissionProgress is the per-user, per-day mission record. DateKey is
// the canonical YYYY-MM-DD string in IST; the unique index means concurrent
// tabs assigning "today" converge on a single row. Completed is sticky:
// once true, code edits and further completions are ignored.
type DailyMissionProgress struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_user_date;not null" json:"userId"`
	DateKey   string    `gorm:"uniqueIndex:idx_user_date;not null" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	QuestionID string `gorm:"not null" json:"questionId"`
	Language   string `json:"language"`
	Code       string `gorm:"type:text" json:"code"`
	Completed  bool   `gorm:"default:false" json:"completed"`

	Question Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (DailyMissionProgress) TableName() string {
	return "daily_mission_progress"
}
