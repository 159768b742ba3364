package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// setupTestDB initializes an isolated in-memory SQLite DB per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.ActivityEvent{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Question{},
		&models.DailyMissionProgress{},
		&models.AssessmentResult{},
		&models.HackathonResult{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// Noon IST on a fixed date.
var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, gamification.Location())

var testClock = gamification.FixedClock{T: testNow}

func seedUser(t *testing.T, db *gorm.DB, id string, xp, solved int) models.User {
	t.Helper()
	user := models.User{
		ID:                  id,
		Username:            id,
		Email:               id + "@example.com",
		XP:                  xp,
		Level:               gamification.CalculateLevel(xp),
		QuestionsSolved:     solved,
		OnboardingCompleted: true,
		PreferredLanguage:   "python",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedQuestion(t *testing.T, db *gorm.DB, id, language string) models.Question {
	t.Helper()
	q := models.Question{
		ID:          id,
		Title:       "Sum Two Numbers",
		Description: "Read two integers and print their sum.",
		Difficulty:  "EASY",
		Language:    language,
		StarterCode: "def solve():\n    pass\n",
		TestCases:   `[{"input":"1 2","expected":"3"}]`,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return q
}
