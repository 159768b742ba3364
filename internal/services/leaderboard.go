package services

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// LeaderboardService ranks users by XP. The ordering is recomputed from a
// wholesale snapshot on every refresh — no incremental index — with a short
// TTL cache in front since the snapshot is small.
type LeaderboardService struct {
	db *gorm.DB

	mu        sync.RWMutex
	snapshot  []models.User
	expiresAt time.Time
	ttl       time.Duration
}

const leaderboardCacheKey = "leaderboard:global"

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db, ttl: 10 * time.Second}
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
}

// Standing is one user's place in the global ordering.
type Standing struct {
	Position   int               `json:"position"`
	Total      int               `json:"total"`
	Percentile int               `json:"percentile"`
	XP         int               `json:"xp"`
	Level      int               `json:"level"`
	Tier       gamification.Tier `json:"tier"`
}

// Snapshot returns the ordered user set: xp DESC with created_at ASC as the
// stable tie-break, so rank positions are reproducible between refreshes.
func (s *LeaderboardService) Snapshot() ([]models.User, error) {
	s.mu.RLock()
	if s.snapshot != nil && time.Now().Before(s.expiresAt) {
		users := s.snapshot
		s.mu.RUnlock()
		return users, nil
	}
	s.mu.RUnlock()

	var users []models.User
	if database.Redis != nil {
		if err := database.CacheGet(leaderboardCacheKey, &users); err == nil && len(users) > 0 {
			s.store(users)
			return users, nil
		}
	}

	if err := s.db.Model(&models.User{}).
		Where("onboarding_completed = ?", true).
		Order("xp DESC, created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	if database.Redis != nil {
		database.CacheSet(leaderboardCacheKey, users, s.ttl)
	}
	s.store(users)
	return users, nil
}

func (s *LeaderboardService) store(users []models.User) {
	s.mu.Lock()
	s.snapshot = users
	s.expiresAt = time.Now().Add(s.ttl)
	s.mu.Unlock()
}

// Invalidate drops the cached snapshot. Called after XP-mutating writes.
func (s *LeaderboardService) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
	if database.Redis != nil {
		database.CacheInvalidate(leaderboardCacheKey)
	}
}

// Top returns the first n leaderboard entries.
func (s *LeaderboardService) Top(n int) ([]LeaderboardEntry, error) {
	if n <= 0 || n > 100 {
		n = 20
	}
	users, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	if len(users) < n {
		n = len(users)
	}
	entries := make([]LeaderboardEntry, 0, n)
	for i := 0; i < n; i++ {
		u := users[i]
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   u.ID,
			Username: u.Username,
			Name:     u.Name,
			Image:    u.Image,
			XP:       u.XP,
			Level:    u.Level,
		})
	}
	return entries, nil
}

// StandingFor computes the user's rank, percentile and tier against the
// current snapshot. A user absent from the snapshot ranks last rather
// than erroring.
func (s *LeaderboardService) StandingFor(userID string) (*Standing, error) {
	users, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	position, total := gamification.Rank(userID, users)

	standing := &Standing{
		Position:   position,
		Total:      total,
		Percentile: gamification.Percentile(position, total),
	}
	for _, u := range users {
		if u.ID == userID {
			standing.XP = u.XP
			standing.Level = u.Level
			standing.Tier = gamification.TierForLevel(u.Level)
			break
		}
	}
	return standing, nil
}
