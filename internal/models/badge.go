package models

import "time"

type BadgeCategory string

const (
	BadgeCategoryStreak    BadgeCategory = "STREAK"
	BadgeCategorySkill     BadgeCategory = "SKILL"
	BadgeCategoryMilestone BadgeCategory = "MILESTONE"
	BadgeCategoryCommunity BadgeCategory = "COMMUNITY"
)

// Badge is a declarative unlock rule: Condition names a stat computed by the
// badge service (e.g. "questions_solved", "longest_streak") and Threshold is
// the value that stat must reach. Keeping predicates as data instead of
// closures makes them serializable and independently testable. All stats are
// monotone, so a badge never re-locks once unlocked.
type Badge struct {
	ID          string        `gorm:"primaryKey;type:text" json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Category    BadgeCategory `gorm:"type:text" json:"category"`
	Condition   string        `json:"condition"`
	Threshold   int           `json:"threshold"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge records an explicit claim. The composite primary key gives the
// claimed set its no-duplicates semantics at the database level.
type UserBadge struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"userId"`
	BadgeID   string    `gorm:"primaryKey;type:text" json:"badgeId"`
	Progress  int       `gorm:"default:0" json:"progress"`
	ClaimedAt time.Time `json:"claimedAt"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
