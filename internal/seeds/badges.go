package seeds

import (
	"log"

	"github.com/google/uuid"
	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// SeedBadges installs the badge registry. Conditions name stats computed by
// the badge service; thresholds are the values those stats must reach.
func SeedBadges() {
	log.Println("🎖️ Seeding System Badges...")

	badges := []models.Badge{
		{
			Name:        "First Blood",
			Description: "Solved your first coding question.",
			Icon:        "check-circle",
			Category:    models.BadgeCategoryMilestone,
			Condition:   "questions_solved",
			Threshold:   1,
		},
		{
			Name:        "Problem Solver",
			Description: "Solved 10 coding questions.",
			Icon:        "zap",
			Category:    models.BadgeCategoryMilestone,
			Condition:   "questions_solved",
			Threshold:   10,
		},
		{
			Name:        "Century Club",
			Description: "Solved 100 coding questions. A true grinder.",
			Icon:        "crown",
			Category:    models.BadgeCategoryMilestone,
			Condition:   "questions_solved",
			Threshold:   100,
		},
		{
			Name:        "Warming Up",
			Description: "Reached a 3-day activity streak.",
			Icon:        "flame",
			Category:    models.BadgeCategoryStreak,
			Condition:   "longest_streak",
			Threshold:   3,
		},
		{
			Name:        "On Fire",
			Description: "Reached a 7-day activity streak.",
			Icon:        "fire",
			Category:    models.BadgeCategoryStreak,
			Condition:   "longest_streak",
			Threshold:   7,
		},
		{
			Name:        "Unstoppable",
			Description: "Reached a 30-day streak at least once.",
			Icon:        "rocket",
			Category:    models.BadgeCategoryStreak,
			Condition:   "longest_streak",
			Threshold:   30,
		},
		{
			Name:        "Assessment Ace",
			Description: "Completed 5 skill assessments.",
			Icon:        "clipboard-check",
			Category:    models.BadgeCategorySkill,
			Condition:   "assessments",
			Threshold:   5,
		},
		{
			Name:        "Concept Collector",
			Description: "Worked through 20 concept lessons.",
			Icon:        "book-open",
			Category:    models.BadgeCategorySkill,
			Condition:   "concepts",
			Threshold:   20,
		},
		{
			Name:        "Rising Star",
			Description: "Earned 1000 XP.",
			Icon:        "trending-up",
			Category:    models.BadgeCategoryMilestone,
			Condition:   "xp",
			Threshold:   1000,
		},
		{
			Name:        "Veteran",
			Description: "Earned 5000 XP.",
			Icon:        "shield-check",
			Category:    models.BadgeCategoryMilestone,
			Condition:   "xp",
			Threshold:   5000,
		},
		{
			Name:        "Hackathon Hero",
			Description: "Competed in a hackathon.",
			Icon:        "trophy",
			Category:    models.BadgeCategoryCommunity,
			Condition:   "hackathons",
			Threshold:   1,
		},
		{
			Name:        "Dear Diary",
			Description: "Wrote 10 journal entries.",
			Icon:        "pencil",
			Category:    models.BadgeCategoryCommunity,
			Condition:   "journal_entries",
			Threshold:   10,
		},
		{
			Name:        "Early Adopter",
			Description: "Joined during the initial launch phase.",
			Icon:        "star",
			Category:    models.BadgeCategoryCommunity,
			Condition:   "early_adopter",
			Threshold:   1,
		},
	}

	for _, b := range badges {
		var existing models.Badge
		if err := database.DB.Where("name = ?", b.Name).First(&existing).Error; err == nil {
			continue
		}

		b.ID = uuid.New().String()
		if err := database.DB.Create(&b).Error; err != nil {
			log.Printf("   ❌ Failed to create badge %s: %v", b.Name, err)
		} else {
			log.Printf("   🎖️ Badge Defined: %s", b.Name)
		}
	}
}
