package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	"github.com/Yuvanesh-03/maverick-backend/pkg/logger"
)

// SubmitAssessment handles POST /api/assessments/submit
// Judges the submission against the question's test cases, scores it as a
// 0-100 percentage, grants XP per the credit rule (full above the score
// threshold, quarter otherwise) and appends an assessment event with a
// weak reference to the stored result. A judge failure is surfaced and
// affects neither XP nor streak.
func SubmitAssessment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	uid := userID.(string)

	// Judged submissions are expensive; cap them per user on top of the
	// per-IP execute limiter. Degrades open when Redis is unavailable.
	if database.Redis != nil {
		allowed, err := database.CheckRateLimit("assessment:"+uid, 10, time.Minute)
		if err == nil && !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many submissions. Please slow down."})
			return
		}
	}

	var input struct {
		QuestionID string `json:"questionId" binding:"required"`
		Code       string `json:"code" binding:"required"`
		Language   string `json:"language" binding:"required"`
		Difficulty string `json:"difficulty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", input.QuestionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	var testCases []models.TestCase
	if question.TestCases != "" {
		if err := json.Unmarshal([]byte(question.TestCases), &testCases); err != nil {
			// A corrupt bank entry must not judge against zero cases and
			// score 100 via the clean-run fallback.
			logger.Error().Err(err).Str("question_id", question.ID).Msg("Corrupt test cases on question")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Question test cases are invalid"})
			return
		}
	}

	runResult, err := codeJudge.Run(c.Request.Context(), input.Code, input.Language, testCases, question.TimeLimit, question.MemoryLimit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Code execution failed", "detail": err.Error()})
		return
	}

	passed := 0
	for _, tr := range runResult.TestResults {
		if tr.Passed {
			passed++
		}
	}
	total := len(runResult.TestResults)

	score := 0
	if total > 0 {
		score = passed * 100 / total
	} else if runResult.Success {
		score = 100
	}

	verdict := "WRONG_ANSWER"
	if score == 100 {
		verdict = "ACCEPTED"
	} else if passed > 0 {
		verdict = "PARTIAL"
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = question.Difficulty
	}

	result := models.AssessmentResult{
		UserID:      uid,
		Language:    input.Language,
		Difficulty:  difficulty,
		Code:        input.Code,
		Score:       score,
		TestsPassed: passed,
		TestsTotal:  total,
		Verdict:     verdict,
		Error:       runResult.Error,
	}
	if err := database.DB.Create(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store result"})
		return
	}

	activitySvc.LogActivity(uid, models.ActivityAssessment, input.Language, &score, &result.ID)

	xpDelta := gamification.XPForEvent(models.ActivityAssessment, &score)
	xp, level, err := profileSvc.GrantXP(uid, xpDelta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant XP"})
		return
	}
	leaderboardSvc.Invalidate()

	if err := profileSvc.UpsertSkill(uid, input.Language, skillLevelForScore(score, difficulty), difficulty); err != nil {
		logger.Warn().Err(err).Str("user_id", uid).Msg("Failed to upsert skill")
	}

	c.JSON(http.StatusCreated, gin.H{
		"result":    result,
		"xpAwarded": xpDelta,
		"xp":        xp,
		"level":     level,
	})
}

// skillLevelForScore maps a score and assessment difficulty to the skill
// band shown on the profile.
func skillLevelForScore(score int, difficulty string) models.SkillLevel {
	if score <= gamification.FullCreditScore {
		return models.SkillBasic
	}
	switch difficulty {
	case "HARD":
		return models.SkillExpert
	case "MEDIUM":
		return models.SkillAdvanced
	default:
		return models.SkillIntermediate
	}
}

// SubmitHackathonResult handles POST /api/hackathons/result
// Records participation, grants the flat hackathon XP and appends a
// hackathon event to the ledger.
func SubmitHackathonResult(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	uid := userID.(string)

	var input struct {
		HackathonName string `json:"hackathonName" binding:"required"`
		ProjectName   string `json:"projectName"`
		Position      int    `json:"position"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := models.HackathonResult{
		UserID:        uid,
		HackathonName: input.HackathonName,
		ProjectName:   input.ProjectName,
		Position:      input.Position,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store result"})
		return
	}

	activitySvc.LogActivity(uid, models.ActivityHackathon, "", nil, &record.ID)

	xp, level, err := profileSvc.GrantXP(uid, gamification.HackathonXP)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant XP"})
		return
	}
	leaderboardSvc.Invalidate()

	c.JSON(http.StatusCreated, gin.H{
		"result":    record,
		"xpAwarded": gamification.HackathonXP,
		"xp":        xp,
		"level":     level,
	})
}
