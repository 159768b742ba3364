package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	"github.com/Yuvanesh-03/maverick-backend/pkg/logger"
)

// ActivityService owns the append-only activity ledger. Streaks and
// heatmaps are always derived from it on read, never maintained as
// counters.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// LogActivity appends one event to the ledger. Fire-and-forget: a failed
// append is logged, not propagated, so gamified writes never block the
// main flow.
func (s *ActivityService) LogActivity(userID string, eventType models.ActivityType, language string, score *int, resultID *string) {
	event := models.ActivityEvent{
		UserID:     userID,
		Type:       eventType,
		Language:   language,
		OccurredAt: time.Now(),
		Score:      score,
		ResultID:   resultID,
	}

	if err := s.db.Create(&event).Error; err != nil {
		logger.Error().Err(err).Str("user_id", userID).Str("type", string(eventType)).Msg("Failed to log activity")
	}
}

// EventsFor returns the full ledger for a user. Callers sort or collapse
// by day themselves; insertion order is not guaranteed chronological.
func (s *ActivityService) EventsFor(userID string) ([]models.ActivityEvent, error) {
	var events []models.ActivityEvent
	err := s.db.Where("user_id = ?", userID).Find(&events).Error
	return events, err
}

// Recent returns the latest events for display, newest first.
func (s *ActivityService) Recent(userID string, limit int) ([]models.ActivityEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var events []models.ActivityEvent
	err := s.db.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
