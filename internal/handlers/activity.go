package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// Event kinds clients may append directly. Judged kinds (assessment,
// daily mission, hackathon) are appended by their own flows.
var clientLoggableTypes = map[models.ActivityType]bool{
	models.ActivityConcept:    true,
	models.ActivityPlayground: true,
	models.ActivityJournal:    true,
	models.ActivityQuiz:       true,
}

// LogActivityEvent handles POST /api/activity
// Appends one event to the ledger and grants the type's XP.
func LogActivityEvent(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	uid := userID.(string)

	// Per-user flood guard on top of the per-IP limiter. Degrades open when
	// Redis is unavailable, matching InitRedis' warn-only behavior.
	if database.Redis != nil {
		allowed, err := database.CheckRateLimit("activity:"+uid, 30, time.Minute)
		if err == nil && !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many activity events. Please slow down."})
			return
		}
	}

	var input struct {
		Type     models.ActivityType `json:"type" binding:"required"`
		Language string              `json:"language"`
		Score    *int                `json:"score"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !clientLoggableTypes[input.Type] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported activity type"})
		return
	}

	if input.Score != nil && (*input.Score < 0 || *input.Score > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be between 0 and 100"})
		return
	}

	activitySvc.LogActivity(uid, input.Type, input.Language, input.Score, nil)

	xp, level, err := profileSvc.GrantXP(uid, gamification.XPForEvent(input.Type, input.Score))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant XP"})
		return
	}
	leaderboardSvc.Invalidate()

	c.JSON(http.StatusCreated, gin.H{"xp": xp, "level": level})
}

// GetMyActivity handles GET /api/activity/me
// Recent events plus a day-keyed heatmap. Events are collapsed into IST
// day buckets the same way the streak calculator does it.
func GetMyActivity(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	uid := userID.(string)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	recent, err := activitySvc.Recent(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	events, err := activitySvc.EventsFor(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	heatmap := make(map[string]int)
	for _, e := range events {
		if e.OccurredAt.IsZero() {
			continue
		}
		heatmap[gamification.DateKey(e.OccurredAt)]++
	}

	days := make([]string, 0, len(heatmap))
	for day := range heatmap {
		days = append(days, day)
	}
	sort.Strings(days)

	c.JSON(http.StatusOK, gin.H{
		"recent":        recent,
		"heatmap":       heatmap,
		"activeDays":    days,
		"currentStreak": gamification.CurrentStreak(events, appClock),
		"longestStreak": gamification.LongestStreak(events),
	})
}
