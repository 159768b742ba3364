package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

func rankedUsers() []models.User {
	return []models.User{
		{ID: "a", XP: 300},
		{ID: "b", XP: 100},
		{ID: "c", XP: 200},
	}
}

func TestRank_Positions(t *testing.T) {
	users := rankedUsers()

	pos, total := Rank("a", users)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 3, total)

	pos, _ = Rank("c", users)
	assert.Equal(t, 2, pos)

	pos, _ = Rank("b", users)
	assert.Equal(t, 3, pos)
}

func TestRank_MissingUserRanksLast(t *testing.T) {
	pos, total := Rank("ghost", rankedUsers())
	assert.Equal(t, 4, pos)
	assert.Equal(t, 3, total)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	users := []models.User{
		{ID: "first", XP: 100},
		{ID: "second", XP: 100},
	}
	pos, _ := Rank("first", users)
	assert.Equal(t, 1, pos)
	pos, _ = Rank("second", users)
	assert.Equal(t, 2, pos)
}

func TestPercentile(t *testing.T) {
	assert.Equal(t, 100, Percentile(1, 3))
	assert.Equal(t, 67, Percentile(2, 3))
	assert.Equal(t, 33, Percentile(3, 3))
	assert.Equal(t, 0, Percentile(4, 3)) // ranked past the snapshot
	assert.Equal(t, 0, Percentile(1, 0))
}
