package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	apperrors "github.com/Yuvanesh-03/maverick-backend/pkg/errors"
)

// BadgeService evaluates the declarative badge registry against a user's
// live stats and performs the claim transition. Evaluation is read-only;
// only Claim writes, and claiming grants no XP — badges are recognition,
// not currency.
type BadgeService struct {
	db       *gorm.DB
	activity *ActivityService
	clock    gamification.Clock
}

func NewBadgeService(db *gorm.DB, activity *ActivityService, clock gamification.Clock) *BadgeService {
	return &BadgeService{db: db, activity: activity, clock: clock}
}

// BadgeStatus is one badge's state for a given user.
type BadgeStatus struct {
	Badge    models.Badge `json:"badge"`
	Unlocked bool         `json:"unlocked"`
	Claimed  bool         `json:"claimed"`
	Progress int64        `json:"progress"`
}

// Stats computes the monotone quantities badge conditions may refer to.
// Every stat here only ever grows, which is what keeps unlocked badges
// unlocked: a current streak re-locks after a missed day, so streak badges
// key on longest_streak instead.
func (s *BadgeService) Stats(userID string) (map[string]int64, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	events, err := s.activity.EventsFor(userID)
	if err != nil {
		return nil, err
	}

	countType := func(t models.ActivityType) int64 {
		var n int64
		for _, e := range events {
			if e.Type == t {
				n++
			}
		}
		return n
	}

	var hackathons int64
	s.db.Model(&models.HackathonResult{}).Where("user_id = ?", userID).Count(&hackathons)

	// Early adopter: among the first 1000 accounts.
	var signupRank int64
	s.db.Model(&models.User{}).
		Where("created_at <= (SELECT created_at FROM users WHERE id = ?)", userID).
		Count(&signupRank)
	earlyAdopter := int64(0)
	if signupRank > 0 && signupRank <= 1000 {
		earlyAdopter = 1
	}

	return map[string]int64{
		"questions_solved": int64(user.QuestionsSolved),
		"xp":               int64(user.XP),
		"level":            int64(user.Level),
		"longest_streak":   int64(gamification.LongestStreak(events)),
		"assessments":      countType(models.ActivityAssessment),
		"concepts":         countType(models.ActivityConcept),
		"journal_entries":  countType(models.ActivityJournal),
		"hackathons":       hackathons,
		"early_adopter":    earlyAdopter,
	}, nil
}

// Evaluate returns the status of every registered badge for the user.
func (s *BadgeService) Evaluate(userID string) ([]BadgeStatus, error) {
	stats, err := s.Stats(userID)
	if err != nil {
		return nil, err
	}

	var badges []models.Badge
	if err := s.db.Order("category, threshold").Find(&badges).Error; err != nil {
		return nil, err
	}

	claimed := make(map[string]bool)
	var claimedIDs []string
	s.db.Model(&models.UserBadge{}).Where("user_id = ?", userID).Pluck("badge_id", &claimedIDs)
	for _, id := range claimedIDs {
		claimed[id] = true
	}

	statuses := make([]BadgeStatus, 0, len(badges))
	for _, badge := range badges {
		progress := stats[badge.Condition]
		statuses = append(statuses, BadgeStatus{
			Badge:    badge,
			Unlocked: progress >= int64(badge.Threshold),
			Claimed:  claimed[badge.ID],
			Progress: progress,
		})
	}
	return statuses, nil
}

// Claim appends the badge to the user's claimed set. Preconditions: the
// unlock condition holds and the badge is not already claimed. Claiming an
// already-claimed badge is a no-op success so duplicate clicks and retries
// are harmless; an unmet condition is ErrNotUnlocked.
func (s *BadgeService) Claim(userID, badgeID string) (*models.UserBadge, error) {
	var badge models.Badge
	if err := s.db.First(&badge, "id = ?", badgeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Badge not found")
		}
		return nil, err
	}

	var existing models.UserBadge
	err := s.db.Preload("Badge").
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats, err := s.Stats(userID)
	if err != nil {
		return nil, err
	}

	progress := stats[badge.Condition]
	if progress < int64(badge.Threshold) {
		return nil, apperrors.ErrNotUnlocked
	}

	claim := models.UserBadge{
		UserID:    userID,
		BadgeID:   badgeID,
		Progress:  int(progress),
		ClaimedAt: s.clock.Now(),
	}

	// Set semantics under concurrency: the composite key plus DoNothing
	// makes a racing duplicate collapse into the first claim.
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&claim).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Badge").
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}
