package handlers

import (
	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/services"
)

// Shared service instances wired by main (and by tests with a sqlite DB
// plus stub judge/clock).
var (
	activitySvc    *services.ActivityService
	missionSvc     *services.MissionService
	badgeSvc       *services.BadgeService
	leaderboardSvc *services.LeaderboardService
	profileSvc     *services.ProfileService
	questionBank   *services.QuestionBank
	codeJudge      services.Judge
	appClock       gamification.Clock
)

// InitServices wires the handler package's service instances.
func InitServices(db *gorm.DB, judge services.Judge, clock gamification.Clock) {
	activitySvc = services.NewActivityService(db)
	questionBank = services.NewQuestionBank(db)
	missionSvc = services.NewMissionService(db, questionBank, activitySvc, clock)
	badgeSvc = services.NewBadgeService(db, activitySvc, clock)
	leaderboardSvc = services.NewLeaderboardService(db)
	profileSvc = services.NewProfileService(db)
	codeJudge = judge
	appClock = clock
}
