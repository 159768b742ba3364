package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	"github.com/Yuvanesh-03/maverick-backend/internal/services"
	apperrors "github.com/Yuvanesh-03/maverick-backend/pkg/errors"
)

// GetTodayMission handles GET /api/missions/today
// Assigns today's mission if none exists yet. A question-bank failure is a
// retryable 503 and leaves mission state untouched.
func GetTodayMission(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, err := missionSvc.GetToday(userID.(string))
	if err != nil {
		if errors.Is(err, apperrors.ErrQuestionFetchFailed) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not load today's mission, please retry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load mission"})
		return
	}

	// The solution test cases stay server-side.
	progress.Question.TestCases = ""

	c.JSON(http.StatusOK, gin.H{"mission": progress})
}

// SaveMissionCode handles PUT /api/missions/today/code
// Persists the in-progress snapshot; ignored once completed.
func SaveMissionCode(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := missionSvc.SaveCode(userID.(string), input.Code); err != nil {
		if errors.Is(err, apperrors.ErrStaleMissionDate) {
			c.JSON(http.StatusConflict, gin.H{"error": "No mission assigned for today yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Code saved"})
}

// RunMissionCode handles POST /api/missions/today/run
// Executes the code against the mission's test cases without touching
// mission state, XP or streaks.
func RunMissionCode(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := missionSvc.GetToday(userID.(string))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not load today's mission"})
		return
	}

	result, err := runAgainstQuestion(c, input.Code, &progress.Question, progress.Language)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Code execution failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// CompleteMission handles POST /api/missions/today/complete
// The final submission: code is judged against all test cases, and only a
// fully passing run finishes the mission. Judge failure never marks the day
// complete; a second passing submission is a no-op with no second XP grant.
func CompleteMission(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	uid := userID.(string)

	var input struct {
		Code string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	progress, err := missionSvc.GetToday(uid)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not load today's mission"})
		return
	}

	if progress.Completed {
		c.JSON(http.StatusOK, gin.H{"completed": true, "alreadyCompleted": true})
		return
	}

	if err := missionSvc.SaveCode(uid, input.Code); err != nil && !errors.Is(err, apperrors.ErrStaleMissionDate) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save code"})
		return
	}

	result, err := runAgainstQuestion(c, input.Code, &progress.Question, progress.Language)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Code execution failed", "detail": err.Error()})
		return
	}

	if !result.Success {
		c.JSON(http.StatusOK, gin.H{
			"completed": false,
			"result":    result,
		})
		return
	}

	completion, err := missionSvc.Complete(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record completion"})
		return
	}

	leaderboardSvc.Invalidate()

	c.JSON(http.StatusOK, gin.H{
		"completed":  true,
		"result":     result,
		"completion": completion,
	})
}

// GetMissionHistory handles GET /api/missions/history
func GetMissionHistory(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	history, err := missionSvc.History(userID.(string), 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func runAgainstQuestion(c *gin.Context, code string, question *models.Question, language string) (*services.RunResult, error) {
	var testCases []models.TestCase
	if question.TestCases != "" {
		if err := json.Unmarshal([]byte(question.TestCases), &testCases); err != nil {
			testCases = nil
		}
	}

	if language == "" {
		language = question.Language
	}

	return codeJudge.Run(c.Request.Context(), code, language, testCases, question.TimeLimit, question.MemoryLimit)
}
