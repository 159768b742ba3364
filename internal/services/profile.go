package services

import (
	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// ProfileService owns writes to the user aggregate that touch XP.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GrantXP adds delta XP server-side and recomputes the derived level from
// the post-increment total. The increment is atomic at the database, so
// concurrent sessions cannot lose updates the way client-computed totals
// would. Negative deltas are rejected; XP only grows.
func (s *ProfileService) GrantXP(userID string, delta int) (xp int, level int, err error) {
	if delta < 0 {
		delta = 0
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("xp", gorm.Expr("xp + ?", delta)).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		xp = user.XP
		level = gamification.CalculateLevel(user.XP)
		return tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("level", level).Error
	})
	return xp, level, err
}

// UpsertSkill records or upgrades a per-language skill after an assessment.
// Skill levels only move upward.
func (s *ProfileService) UpsertSkill(userID, name string, level models.SkillLevel, difficulty string) error {
	order := map[models.SkillLevel]int{
		models.SkillBasic:        1,
		models.SkillIntermediate: 2,
		models.SkillAdvanced:     3,
		models.SkillExpert:       4,
	}

	var existing models.Skill
	err := s.db.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return s.db.Create(&models.Skill{
			ID:                   userID + ":" + name,
			UserID:               userID,
			Name:                 name,
			Level:                level,
			AssessmentDifficulty: difficulty,
		}).Error
	}
	if err != nil {
		return err
	}

	if order[level] > order[existing.Level] {
		return s.db.Model(&existing).
			Updates(map[string]interface{}{"level": level, "assessment_difficulty": difficulty}).Error
	}
	return nil
}
