package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type SkillLevel string

const (
	SkillBasic        SkillLevel = "BASIC"
	SkillIntermediate SkillLevel = "INTERMEDIATE"
	SkillAdvanced     SkillLevel = "ADVANCED"
	SkillExpert       SkillLevel = "EXPERT"
)

// User is the aggregate root of the gamification core. XP only ever grows
// (admin corrections aside) and Level is always derived from XP via
// gamification.CalculateLevel — it is never written independently.
type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`

	Role Role `gorm:"type:text;default:'USER'" json:"role"`

	XP              int `gorm:"default:0" json:"xp"`
	Level           int `gorm:"default:1" json:"level"`
	QuestionsSolved int `gorm:"default:0" json:"questionsSolved"`

	OnboardingCompleted bool   `gorm:"default:false" json:"onboardingCompleted"`
	PreferredLanguage   string `gorm:"default:'javascript'" json:"preferredLanguage"`

	Password string `json:"-"`

	Skills []Skill `gorm:"foreignKey:UserID" json:"skills,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Skill tracks a per-language proficiency earned through assessments.
type Skill struct {
	ID     string `gorm:"primaryKey;type:text" json:"id"`
	UserID string `gorm:"index;not null" json:"userId"`

	Name                 string     `json:"name"`
	Level                SkillLevel `gorm:"type:text;default:'BASIC'" json:"level"`
	AssessmentDifficulty string     `json:"assessmentDifficulty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

func (Skill) TableName() string {
	return "skills"
}
