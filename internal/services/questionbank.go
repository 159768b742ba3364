package services

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	apperrors "github.com/Yuvanesh-03/maverick-backend/pkg/errors"
	"github.com/Yuvanesh-03/maverick-backend/pkg/logger"
)

// QuestionBank resolves the daily-mission question for a (dateKey, language)
// pair. The pick is a pure function of the key, so every tab and session of
// a user lands on the same question for a given day, and two users with the
// same preferred language share the day's mission.
type QuestionBank struct {
	db *gorm.DB
}

func NewQuestionBank(db *gorm.DB) *QuestionBank {
	return &QuestionBank{db: db}
}

// GetOrGenerate returns the question assigned to dateKey+language.
// Falls back to the whole bank when no question exists for the language.
func (b *QuestionBank) GetOrGenerate(dateKey, language string) (*models.Question, error) {
	cacheKey := fmt.Sprintf("daily_question:%s:%s", dateKey, language)
	if database.Redis != nil {
		var cached models.Question
		if err := database.CacheGet(cacheKey, &cached); err == nil && cached.ID != "" {
			return &cached, nil
		}
	}

	question, err := b.pick(dateKey, language)
	if err != nil {
		return nil, err
	}

	if database.Redis != nil {
		// The pick can't change within the day; cache until well past rollover.
		if err := database.CacheSet(cacheKey, question, 36*time.Hour); err != nil {
			logger.Warn().Err(err).Str("date", dateKey).Msg("Failed to cache daily question")
		}
	}
	return question, nil
}

func (b *QuestionBank) pick(dateKey, language string) (*models.Question, error) {
	var count int64
	if err := b.db.Model(&models.Question{}).Where("language = ?", language).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQuestionFetchFailed, err)
	}

	byLanguage := count > 0
	if !byLanguage {
		if err := b.db.Model(&models.Question{}).Count(&count).Error; err != nil || count == 0 {
			return nil, apperrors.ErrQuestionFetchFailed
		}
	}

	offset := deterministicIndex(dateKey, language, count)

	query := b.db.Order("id ASC").Offset(int(offset))
	if byLanguage {
		query = query.Where("language = ?", language)
	}

	var question models.Question
	if err := query.First(&question).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQuestionFetchFailed, err)
	}
	return &question, nil
}

// deterministicIndex hashes the assignment key into [0, count).
func deterministicIndex(dateKey, language string, count int64) int64 {
	sum := sha256.Sum256([]byte(dateKey + ":" + language))
	n := binary.BigEndian.Uint64(sum[:8])
	return int64(n % uint64(count))
}
