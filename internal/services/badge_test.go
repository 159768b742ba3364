package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	apperrors "github.com/Yuvanesh-03/maverick-backend/pkg/errors"
)

func TestBadgeClaimBeforeUnlockedRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db, NewActivityService(db), testClock)

	seedUser(t, db, "u1", 0, 2)
	db.Create(&models.Badge{
		ID: "solver_5", Name: "Apprentice Solver",
		Condition: "questions_solved", Threshold: 5,
	})

	_, err := svc.Claim("u1", "solver_5")
	assert.ErrorIs(t, err, apperrors.ErrNotUnlocked)

	// Claimed set unchanged.
	var count int64
	db.Model(&models.UserBadge{}).Where("user_id = ?", "u1").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestBadgeClaimIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db, NewActivityService(db), testClock)

	seedUser(t, db, "u1", 0, 7)
	db.Create(&models.Badge{
		ID: "solver_5", Name: "Apprentice Solver",
		Condition: "questions_solved", Threshold: 5,
	})

	first, err := svc.Claim("u1", "solver_5")
	assert.NoError(t, err)
	assert.Equal(t, "solver_5", first.BadgeID)

	// Second claim: no-op success, not an error.
	second, err := svc.Claim("u1", "solver_5")
	assert.NoError(t, err)
	assert.Equal(t, first.ClaimedAt.Unix(), second.ClaimedAt.Unix())

	var count int64
	db.Model(&models.UserBadge{}).Where("user_id = ?", "u1").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBadgeClaimGrantsNoXP(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db, NewActivityService(db), testClock)

	seedUser(t, db, "u1", 250, 7)
	db.Create(&models.Badge{
		ID: "solver_5", Name: "Apprentice Solver",
		Condition: "questions_solved", Threshold: 5,
	})

	_, err := svc.Claim("u1", "solver_5")
	assert.NoError(t, err)

	var user models.User
	db.First(&user, "id = ?", "u1")
	assert.Equal(t, 250, user.XP)
}

func TestBadgeClaimUnknownBadge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db, NewActivityService(db), testClock)

	seedUser(t, db, "u1", 0, 0)

	_, err := svc.Claim("u1", "nope")
	assert.Error(t, err)
}

func TestBadgeEvaluateStatuses(t *testing.T) {
	db := setupTestDB(t)
	activity := NewActivityService(db)
	svc := NewBadgeService(db, activity, testClock)

	seedUser(t, db, "u1", 500, 10)
	db.Create(&models.Badge{
		ID: "solver_5", Name: "Apprentice Solver",
		Condition: "questions_solved", Threshold: 5,
	})
	db.Create(&models.Badge{
		ID: "streak_3", Name: "On Fire",
		Condition: "longest_streak", Threshold: 3,
	})

	// Two active days only: streak badge stays locked.
	db.Create(&models.ActivityEvent{UserID: "u1", Type: models.ActivityConcept, OccurredAt: testNow})
	db.Create(&models.ActivityEvent{UserID: "u1", Type: models.ActivityConcept, OccurredAt: testNow.AddDate(0, 0, -1)})

	statuses, err := svc.Evaluate("u1")
	assert.NoError(t, err)
	assert.Len(t, statuses, 2)

	byID := map[string]BadgeStatus{}
	for _, st := range statuses {
		byID[st.Badge.ID] = st
	}

	assert.True(t, byID["solver_5"].Unlocked)
	assert.False(t, byID["solver_5"].Claimed)
	assert.Equal(t, int64(10), byID["solver_5"].Progress)

	assert.False(t, byID["streak_3"].Unlocked)
	assert.Equal(t, int64(2), byID["streak_3"].Progress)
}

func TestBadgeStaysUnlockedAfterStreakLapses(t *testing.T) {
	db := setupTestDB(t)
	activity := NewActivityService(db)

	seedUser(t, db, "u1", 0, 0)
	db.Create(&models.Badge{
		ID: "streak_3", Name: "Warming Up",
		Condition: "longest_streak", Threshold: 3,
	})

	// Three consecutive active days ending at testNow.
	for d := 0; d < 3; d++ {
		db.Create(&models.ActivityEvent{
			UserID: "u1", Type: models.ActivityConcept,
			OccurredAt: testNow.AddDate(0, 0, -d),
		})
	}

	svc := NewBadgeService(db, activity, testClock)
	statuses, err := svc.Evaluate("u1")
	assert.NoError(t, err)
	assert.True(t, statuses[0].Unlocked)

	// Two idle days later the current streak is gone, but the badge must
	// not re-lock: once true, unlock predicates stay true.
	later := gamification.FixedClock{T: testNow.AddDate(0, 0, 2)}
	svcLater := NewBadgeService(db, activity, later)

	statuses, err = svcLater.Evaluate("u1")
	assert.NoError(t, err)
	assert.True(t, statuses[0].Unlocked)

	claim, err := svcLater.Claim("u1", "streak_3")
	assert.NoError(t, err)
	assert.Equal(t, "streak_3", claim.BadgeID)
}

func TestBadgeStatsAreMonotoneQuantities(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBadgeService(db, NewActivityService(db), testClock)

	seedUser(t, db, "u1", 321, 4)
	db.Create(&models.HackathonResult{UserID: "u1", HackathonName: "CodeFest"})
	db.Create(&models.ActivityEvent{UserID: "u1", Type: models.ActivityJournal, OccurredAt: testNow})

	stats, err := svc.Stats("u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(321), stats["xp"])
	assert.Equal(t, int64(4), stats["questions_solved"])
	assert.Equal(t, int64(1), stats["hackathons"])
	assert.Equal(t, int64(1), stats["journal_entries"])
	assert.Equal(t, int64(1), stats["early_adopter"])
}
