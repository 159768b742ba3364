package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// GetProfile handles GET /api/users/profile
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.Preload("Skills").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetPublicProfile handles GET /api/users/:username
func GetPublicProfile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := database.DB.Preload("Skills").First(&user, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"username":        user.Username,
			"name":            user.Name,
			"image":           user.Image,
			"bio":             user.Bio,
			"xp":              user.XP,
			"level":           user.Level,
			"tier":            gamification.TierForLevel(user.Level),
			"questionsSolved": user.QuestionsSolved,
			"skills":          user.Skills,
		},
	})
}

// UpdateProfile handles PUT /api/users/profile
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Name              string `json:"name"`
		Bio               string `json:"bio"`
		Image             string `json:"image"`
		PreferredLanguage string `json:"preferredLanguage"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Bio != "" {
		updates["bio"] = input.Bio
	}
	if input.Image != "" {
		updates["image"] = input.Image
	}
	if input.PreferredLanguage != "" {
		updates["preferred_language"] = input.PreferredLanguage
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&models.User{}).Where("id = ?", userID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	var user models.User
	database.DB.First(&user, "id = ?", userID)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// CompleteOnboarding handles POST /api/users/onboarding
func CompleteOnboarding(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		PreferredLanguage string `json:"preferredLanguage" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"preferred_language":   input.PreferredLanguage,
			"onboarding_completed": true,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete onboarding"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Onboarding completed"})
}

// GetStats handles GET /api/users/profile/stats
// Streak, rank and percentile are derived fresh on every call — they are
// never persisted as ground truth.
func GetStats(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	uid := userID.(string)

	var user models.User
	if err := database.DB.First(&user, "id = ?", uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	events, err := activitySvc.EventsFor(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	standing, err := leaderboardSvc.StandingFor(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rank"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"xp":              user.XP,
		"level":           user.Level,
		"tier":            gamification.TierForLevel(user.Level),
		"questionsSolved": user.QuestionsSolved,
		"currentStreak":   gamification.CurrentStreak(events, appClock),
		"longestStreak":   gamification.LongestStreak(events),
		"rank":            standing.Position,
		"totalUsers":      standing.Total,
		"percentile":      standing.Percentile,
	})
}
