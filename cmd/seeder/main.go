package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/Yuvanesh-03/maverick-backend/internal/config"
	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	"github.com/Yuvanesh-03/maverick-backend/internal/seeds"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.ActivityEvent{},
		&models.Question{},
		&models.DailyMissionProgress{},
		&models.Badge{},
		&models.UserBadge{},
		&models.AssessmentResult{},
		&models.HackathonResult{},
	)

	seeds.SeedBadges()
	seeds.SeedQuestions()
	seedDemoUsers()

	log.Println("✅ Seeding Complete!")
}

// seedDemoUsers creates a handful of onboarded accounts so the leaderboard
// and public profiles are not empty on a fresh install. Skipped when users
// already exist.
func seedDemoUsers() {
	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Printf("👤 Users already present (%d), skipping demo accounts", count)
		return
	}

	log.Println("👤 Seeding Demo Users...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	demos := []models.User{
		{Name: "Ada Lovelace", Username: "ada", Email: "ada@maverick.dev", XP: 1250, QuestionsSolved: 18},
		{Name: "Grace Hopper", Username: "grace", Email: "grace@maverick.dev", XP: 980, QuestionsSolved: 12},
		{Name: "Alan Turing", Username: "alan", Email: "alan@maverick.dev", XP: 430, QuestionsSolved: 6},
	}

	for _, u := range demos {
		u.ID = uuid.New().String()
		u.Password = string(hash)
		u.Role = "USER"
		u.Level = gamification.CalculateLevel(u.XP)
		u.OnboardingCompleted = true
		u.PreferredLanguage = "python"
		if err := database.DB.Create(&u).Error; err != nil {
			log.Printf("   ❌ Failed to create user %s: %v", u.Username, err)
		} else {
			log.Printf("   👤 User Added: %s (xp=%d, level=%d)", u.Username, u.XP, u.Level)
		}
	}
}
