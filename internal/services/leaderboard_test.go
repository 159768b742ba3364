package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboardStanding(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)

	seedUser(t, db, "alice", 300, 0)
	seedUser(t, db, "bob", 100, 0)
	seedUser(t, db, "carol", 200, 0)

	standing, err := svc.StandingFor("alice")
	assert.NoError(t, err)
	assert.Equal(t, 1, standing.Position)
	assert.Equal(t, 3, standing.Total)
	assert.Equal(t, 100, standing.Percentile)
	assert.Equal(t, 300, standing.XP)

	standing, err = svc.StandingFor("bob")
	assert.NoError(t, err)
	assert.Equal(t, 3, standing.Position)
	assert.Equal(t, 33, standing.Percentile)
}

func TestLeaderboardAbsentUserRanksLast(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)

	seedUser(t, db, "alice", 300, 0)
	seedUser(t, db, "bob", 100, 0)

	standing, err := svc.StandingFor("ghost")
	assert.NoError(t, err)
	assert.Equal(t, 3, standing.Position)
	assert.Equal(t, 2, standing.Total)
	assert.Equal(t, 0, standing.Percentile)
}

func TestLeaderboardTopOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)

	seedUser(t, db, "alice", 300, 0)
	seedUser(t, db, "bob", 100, 0)
	seedUser(t, db, "carol", 200, 0)

	entries, err := svc.Top(10)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].UserID)
	assert.Equal(t, "carol", entries[1].UserID)
	assert.Equal(t, "bob", entries[2].UserID)
	assert.Equal(t, 1, entries[0].Rank)
}

func TestLeaderboardInvalidateDropsSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)

	seedUser(t, db, "alice", 300, 0)

	_, err := svc.Top(10)
	assert.NoError(t, err)

	seedUser(t, db, "dora", 900, 0)
	svc.Invalidate()

	entries, err := svc.Top(10)
	assert.NoError(t, err)
	assert.Equal(t, "dora", entries[0].UserID)
}

func TestQuestionBankDeterministicPick(t *testing.T) {
	db := setupTestDB(t)
	bank := NewQuestionBank(db)

	seedQuestion(t, db, "q1", "python")
	seedQuestion(t, db, "q2", "python")
	seedQuestion(t, db, "q3", "python")

	a, err := bank.GetOrGenerate("2024-06-15", "python")
	assert.NoError(t, err)
	b, err := bank.GetOrGenerate("2024-06-15", "python")
	assert.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestQuestionBankFallsBackAcrossLanguages(t *testing.T) {
	db := setupTestDB(t)
	bank := NewQuestionBank(db)

	seedQuestion(t, db, "q1", "python")

	q, err := bank.GetOrGenerate("2024-06-15", "rust")
	assert.NoError(t, err)
	assert.Equal(t, "q1", q.ID)
}
