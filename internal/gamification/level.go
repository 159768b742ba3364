package gamification

import "github.com/Yuvanesh-03/maverick-backend/internal/models"

type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

// XP awarded per activity kind. These are configuration constants, not
// computed values.
const (
	DailyMissionXP = 50
	ConceptXP      = 20
	AssessmentXP   = 100
	QuizXP         = 40
	HackathonXP    = 75
	PlaygroundXP   = 10
	JournalXP      = 5

	// Assessments and quizzes above this score earn full credit,
	// anything lower earns a quarter.
	FullCreditScore = 80
)

// levelThresholds[i] is the cumulative XP needed to reach level i+1.
// Gaps widen as levels climb.
var levelThresholds = []int{
	0,     // level 1
	100,   // level 2
	250,   // level 3
	450,   // level 4
	700,   // level 5
	1000,  // level 6
	1400,  // level 7
	1900,  // level 8
	2500,  // level 9
	3200,  // level 10
	4000,  // level 11
	5000,  // level 12
	6200,  // level 13
	7600,  // level 14
	9200,  // level 15
	11000, // level 16
	13000, // level 17
	15200, // level 18
	17600, // level 19
	20200, // level 20
}

// CalculateLevel maps cumulative XP to a level. Total and monotone:
// negative input clamps to zero and higher XP never yields a lower level.
// Beyond the table, each further level costs 3000 XP.
func CalculateLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	last := len(levelThresholds) - 1
	if xp >= levelThresholds[last] {
		return last + 1 + (xp-levelThresholds[last])/3000
	}
	level := 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		} else {
			break
		}
	}
	return level
}

// TierForLevel groups levels into the coarse Bronze..Platinum bands shown
// on profiles.
func TierForLevel(level int) Tier {
	switch {
	case level >= 15:
		return TierPlatinum
	case level >= 10:
		return TierGold
	case level >= 5:
		return TierSilver
	default:
		return TierBronze
	}
}

// XPForEvent returns the XP delta for an activity event. Assessments and
// quizzes apply the score-based credit rule; everything else is a flat
// lookup. Unknown types earn nothing.
func XPForEvent(eventType models.ActivityType, score *int) int {
	switch eventType {
	case models.ActivityDailyMission:
		return DailyMissionXP
	case models.ActivityConcept:
		return ConceptXP
	case models.ActivityAssessment:
		return scoredCredit(AssessmentXP, score)
	case models.ActivityQuiz:
		return scoredCredit(QuizXP, score)
	case models.ActivityHackathon:
		return HackathonXP
	case models.ActivityPlayground:
		return PlaygroundXP
	case models.ActivityJournal:
		return JournalXP
	default:
		return 0
	}
}

func scoredCredit(full int, score *int) int {
	if score != nil && *score > FullCreditScore {
		return full
	}
	return full / 4
}
