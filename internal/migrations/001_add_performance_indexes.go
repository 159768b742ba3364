package migrations

import (
	"gorm.io/gorm"
)

// Migration001AddPerformanceIndexes adds indexes for the hot-path queries:
// 1. Activity timeline per user (streak/heatmap scans)
// 2. Leaderboard ordering (xp DESC, created_at ASC over onboarded users)
// 3. Mission history per user (date_key DESC)
//
// All indexes are idempotent (IF NOT EXISTS) for safe re-runs.
func Migration001AddPerformanceIndexes() Migration {
	return Migration{
		ID:   "001_add_performance_indexes",
		Name: "Add performance indexes for hot-path queries",
		Up: func(db *gorm.DB) error {
			// Index 1: Activity timeline
			// Optimizes: WHERE user_id = ? ORDER BY occurred_at DESC
			idx1 := `
				CREATE INDEX IF NOT EXISTS idx_activity_events_user_time
				ON activity_events (user_id, occurred_at DESC)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			// Index 2: Leaderboard ordering
			// Optimizes: WHERE onboarding_completed ORDER BY xp DESC, created_at ASC
			idx2 := `
				CREATE INDEX IF NOT EXISTS idx_users_leaderboard
				ON users (xp DESC, created_at ASC)
			`
			if err := db.Exec(idx2).Error; err != nil {
				return err
			}

			// Index 3: Mission history
			// Optimizes: WHERE user_id = ? ORDER BY date_key DESC
			idx3 := `
				CREATE INDEX IF NOT EXISTS idx_mission_progress_history
				ON daily_mission_progress (user_id, date_key DESC)
			`
			if err := db.Exec(idx3).Error; err != nil {
				return err
			}

			return nil
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_mission_progress_history`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP INDEX IF EXISTS idx_users_leaderboard`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP INDEX IF EXISTS idx_activity_events_user_time`).Error; err != nil {
				return err
			}
			return nil
		},
	}
}
