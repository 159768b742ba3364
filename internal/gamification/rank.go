package gamification

import (
	"math"

	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// Rank returns the 1-indexed position of userID among users ordered by XP
// descending, plus the total count. Ties are broken by input order, so
// callers should feed a stably ordered snapshot (the leaderboard service
// orders by xp DESC, created_at ASC). A user missing from the snapshot
// ranks last (total+1) instead of erroring — it may have just been deleted.
//
// This is a full recompute per call; the snapshot is small-cardinality so
// the O(n) cost per lookup is acceptable and no index is maintained.
func Rank(userID string, users []models.User) (position int, total int) {
	total = len(users)

	idx := -1
	for i, u := range users {
		if u.ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return total + 1, total
	}

	// 1 + users with strictly more XP + earlier-listed users tied with us.
	position = 1
	for i, u := range users {
		if u.XP > users[idx].XP {
			position++
		} else if u.XP == users[idx].XP && i < idx {
			position++
		}
	}
	return position, total
}

// Percentile converts a rank into a 0-100 percentile. Rank 1 of n is 100.
func Percentile(position, total int) int {
	if total <= 0 || position > total {
		return 0
	}
	return int(math.Round(float64(total-position+1) / float64(total) * 100))
}
