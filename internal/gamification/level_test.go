package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

func TestCalculateLevel_Floor(t *testing.T) {
	assert.Equal(t, 1, CalculateLevel(0))
	assert.Equal(t, 1, CalculateLevel(99))
	assert.Equal(t, 2, CalculateLevel(100))
}

func TestCalculateLevel_ClampsNegative(t *testing.T) {
	assert.Equal(t, 1, CalculateLevel(-500))
}

func TestCalculateLevel_Monotonic(t *testing.T) {
	prev := CalculateLevel(0)
	for xp := 0; xp <= 50000; xp += 37 {
		level := CalculateLevel(xp)
		assert.GreaterOrEqual(t, level, prev, "level dropped at xp=%d", xp)
		assert.Positive(t, level)
		prev = level
	}
}

func TestCalculateLevel_Stable(t *testing.T) {
	assert.Equal(t, CalculateLevel(1234), CalculateLevel(1234))
}

func TestCalculateLevel_BeyondTable(t *testing.T) {
	// 20200 is level 20; every further 3000 XP is one more level.
	assert.Equal(t, 20, CalculateLevel(20200))
	assert.Equal(t, 20, CalculateLevel(23199))
	assert.Equal(t, 21, CalculateLevel(23200))
}

func TestTierForLevel(t *testing.T) {
	assert.Equal(t, TierBronze, TierForLevel(1))
	assert.Equal(t, TierBronze, TierForLevel(4))
	assert.Equal(t, TierSilver, TierForLevel(5))
	assert.Equal(t, TierGold, TierForLevel(10))
	assert.Equal(t, TierPlatinum, TierForLevel(15))
	assert.Equal(t, TierPlatinum, TierForLevel(42))
}

func TestXPForEvent_ScoreCredit(t *testing.T) {
	high := 95
	low := 80 // boundary: >80 required for full credit

	assert.Equal(t, AssessmentXP, XPForEvent(models.ActivityAssessment, &high))
	assert.Equal(t, AssessmentXP/4, XPForEvent(models.ActivityAssessment, &low))
	assert.Equal(t, AssessmentXP/4, XPForEvent(models.ActivityAssessment, nil))

	assert.Equal(t, QuizXP, XPForEvent(models.ActivityQuiz, &high))
	assert.Equal(t, QuizXP/4, XPForEvent(models.ActivityQuiz, &low))
}

func TestXPForEvent_FlatRates(t *testing.T) {
	assert.Equal(t, DailyMissionXP, XPForEvent(models.ActivityDailyMission, nil))
	assert.Equal(t, ConceptXP, XPForEvent(models.ActivityConcept, nil))
	assert.Equal(t, HackathonXP, XPForEvent(models.ActivityHackathon, nil))
	assert.Equal(t, 0, XPForEvent(models.ActivityType("UNKNOWN"), nil))
}
