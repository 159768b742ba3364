package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	"github.com/Yuvanesh-03/maverick-backend/pkg/utils"
)

// CreateQuestion handles POST /api/questions (admin only)
// Appends a question to the bank. The bank is append-only: the daily picker
// indexes by id order, so rows are never replaced in place.
func CreateQuestion(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Difficulty  string `json:"difficulty"`
		Category    string `json:"category"`
		Language    string `json:"language" binding:"required"`
		StarterCode string `json:"starterCode"`
		TestCases   string `json:"testCases" binding:"required"`
		TimeLimit   int    `json:"timeLimit"`
		MemoryLimit int    `json:"memoryLimit"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var testCases []models.TestCase
	if err := json.Unmarshal([]byte(input.TestCases), &testCases); err != nil || len(testCases) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "testCases must be a non-empty JSON array of {input, expected}"})
		return
	}

	question := models.Question{
		ID:          utils.GenerateID(),
		Title:       input.Title,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Category:    input.Category,
		Language:    input.Language,
		StarterCode: input.StarterCode,
		TestCases:   input.TestCases,
		TimeLimit:   input.TimeLimit,
		MemoryLimit: input.MemoryLimit,
	}

	if err := database.DB.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"question": question})
}

// ListQuestions handles GET /api/questions (admin only)
func ListQuestions(c *gin.Context) {
	var questions []models.Question
	query := database.DB.Order("id ASC")
	if lang := c.Query("language"); lang != "" {
		query = query.Where("language = ?", lang)
	}
	if err := query.Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
