package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	apperrors "github.com/Yuvanesh-03/maverick-backend/pkg/errors"
	"github.com/Yuvanesh-03/maverick-backend/pkg/logger"
)

// MissionService runs the daily-mission state machine. One mission per
// user per IST calendar day; assignment is deterministic, completion is
// sticky, and the XP/questions-solved grant happens exactly once via
// atomic server-side increments.
type MissionService struct {
	db       *gorm.DB
	bank     *QuestionBank
	activity *ActivityService
	clock    gamification.Clock
}

func NewMissionService(db *gorm.DB, bank *QuestionBank, activity *ActivityService, clock gamification.Clock) *MissionService {
	return &MissionService{db: db, bank: bank, activity: activity, clock: clock}
}

// CompletionResult reports the outcome of Complete. AlreadyCompleted means
// the call was a no-op (duplicate click, second tab) and nothing changed.
type CompletionResult struct {
	AlreadyCompleted bool `json:"alreadyCompleted"`
	XPAwarded        int  `json:"xpAwarded"`
	XP               int  `json:"xp"`
	Level            int  `json:"level"`
	QuestionsSolved  int  `json:"questionsSolved"`
}

// GetToday returns the user's mission for the current IST day, assigning
// one if none exists yet. A record from a prior day is stale: it stays in
// the table for history but a fresh mission is assigned for today. A
// question-bank failure leaves state untouched so the client can retry.
func (s *MissionService) GetToday(userID string) (*models.DailyMissionProgress, error) {
	today := gamification.TodayKey(s.clock)

	var progress models.DailyMissionProgress
	err := s.db.Preload("Question").
		Where("user_id = ? AND date_key = ?", userID, today).
		First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := s.db.Select("id", "preferred_language").First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	question, err := s.bank.GetOrGenerate(today, user.PreferredLanguage)
	if err != nil {
		return nil, err
	}

	fresh := models.DailyMissionProgress{
		ID:         uuid.New().String(),
		UserID:     userID,
		DateKey:    today,
		QuestionID: question.ID,
		Language:   user.PreferredLanguage,
		Code:       question.StarterCode,
	}

	// Concurrent tabs race here; the unique (user_id, date_key) index plus
	// DoNothing means both converge on the same row.
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Question").
		Where("user_id = ? AND date_key = ?", userID, today).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// SaveCode persists the in-progress code for today's mission so the user
// can resume later in the day. Once the mission is completed the snapshot
// is frozen: further edits are silently ignored.
func (s *MissionService) SaveCode(userID, code string) error {
	today := gamification.TodayKey(s.clock)

	var progress models.DailyMissionProgress
	err := s.db.Where("user_id = ? AND date_key = ?", userID, today).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrStaleMissionDate
	}
	if err != nil {
		return err
	}

	if progress.Completed {
		return nil
	}

	return s.db.Model(&models.DailyMissionProgress{}).
		Where("id = ? AND completed = ?", progress.ID, false).
		Updates(map[string]interface{}{"code": code, "updated_at": time.Now()}).Error
}

// Complete finishes today's mission. The guarded UPDATE flips completed
// exactly once; the loser of a double-submit race gets AlreadyCompleted
// with no second XP grant. XP and questions_solved are incremented
// server-side and level is recomputed from the post-increment XP, never
// from a client-held snapshot.
func (s *MissionService) Complete(userID string) (*CompletionResult, error) {
	today := gamification.TodayKey(s.clock)

	var progress models.DailyMissionProgress
	err := s.db.Where("user_id = ? AND date_key = ?", userID, today).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrStaleMissionDate
	}
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.DailyMissionProgress{}).
			Where("id = ? AND completed = ?", progress.ID, false).
			Update("completed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			result.AlreadyCompleted = true
			return nil
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumns(map[string]interface{}{
				"xp":               gorm.Expr("xp + ?", gamification.DailyMissionXP),
				"questions_solved": gorm.Expr("questions_solved + ?", 1),
			}).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		// Level is derived state: recompute from the incremented XP.
		newLevel := gamification.CalculateLevel(user.XP)
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("level", newLevel).Error; err != nil {
			return err
		}

		result.XPAwarded = gamification.DailyMissionXP
		result.XP = user.XP
		result.Level = newLevel
		result.QuestionsSolved = user.QuestionsSolved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyCompleted {
		s.activity.LogActivity(userID, models.ActivityDailyMission, progress.Language, nil, nil)
		logger.Info().
			Str("user_id", userID).
			Str("date", today).
			Int("xp_awarded", result.XPAwarded).
			Msg("Daily mission completed")
	}

	return result, nil
}

// History returns past mission records, newest first. Prior-day rows are
// kept for display only and are never reused.
func (s *MissionService) History(userID string, limit int) ([]models.DailyMissionProgress, error) {
	if limit <= 0 || limit > 90 {
		limit = 30
	}
	var rows []models.DailyMissionProgress
	err := s.db.Preload("Question").
		Where("user_id = ?", userID).
		Order("date_key DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
