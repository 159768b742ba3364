package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	apperrors "github.com/Yuvanesh-03/maverick-backend/pkg/errors"
)

// ListBadges handles GET /api/badges — the full registry, no user state.
func ListBadges(c *gin.Context) {
	var badges []models.Badge
	if err := database.DB.Order("category, threshold").Find(&badges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// GetMyBadges handles GET /api/badges/me — every badge with this user's
// unlocked/claimed/progress state, re-evaluated against live stats.
func GetMyBadges(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statuses, err := badgeSvc.Evaluate(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": statuses})
}

// ClaimBadge handles POST /api/badges/:id/claim
// Claiming an already-claimed badge is a success (duplicate clicks are
// harmless); an unmet condition is a 409.
func ClaimBadge(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	claim, err := badgeSvc.Claim(userID.(string), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotUnlocked) {
			c.JSON(http.StatusConflict, gin.H{"error": "Badge is not unlocked yet"})
			return
		}
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim badge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"claim": claim})
}
