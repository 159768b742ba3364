package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// Full daily-mission path: register, fetch today's mission, save a draft,
// submit a passing solution, verify the XP grant happens exactly once and
// shows up in stats and the leaderboard.
func TestDailyMissionFlow_e2e(t *testing.T) {
	db := setupIntegration(t, passingJudge())
	r := setupRouter()

	require.NoError(t, db.Create(&models.Question{
		ID:          "q-js-1",
		Title:       "Sum of Two Numbers",
		Difficulty:  "EASY",
		Language:    "javascript",
		StarterCode: "// start here\n",
		TestCases:   `[{"input":"5 3","expected":"8"},{"input":"0 0","expected":"0"}]`,
	}).Error)

	token := createTestUser(t, r, "mission_user", "javascript")

	// Fetch assigns today's mission; the solution test cases stay hidden.
	w := performRequest(r, "GET", "/api/missions/today", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	mission := decodeBody(t, w)["mission"].(map[string]interface{})
	assert.Equal(t, "q-js-1", mission["questionId"])
	assert.Equal(t, false, mission["completed"])
	question := mission["question"].(map[string]interface{})
	assert.Empty(t, question["testCases"])

	// Re-fetch returns the same assignment, not a second row.
	w = performRequest(r, "GET", "/api/missions/today", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	again := decodeBody(t, w)["mission"].(map[string]interface{})
	assert.Equal(t, mission["id"], again["id"])

	// Save a draft.
	w = performRequest(r, "PUT", "/api/missions/today/code", map[string]interface{}{
		"code": "console.log(8)",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Submit the final solution.
	w = performRequest(r, "POST", "/api/missions/today/complete", map[string]interface{}{
		"code": "console.log(8)",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["completed"])
	completion := resp["completion"].(map[string]interface{})
	assert.Equal(t, float64(50), completion["xpAwarded"])
	assert.Equal(t, float64(50), completion["xp"])
	assert.Equal(t, float64(1), completion["questionsSolved"])

	// A duplicate submit is a no-op with no second grant.
	w = performRequest(r, "POST", "/api/missions/today/complete", map[string]interface{}{
		"code": "console.log(8)",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["alreadyCompleted"])

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "mission_user").Error)
	assert.Equal(t, 50, user.XP)
	assert.Equal(t, 1, user.QuestionsSolved)

	// Stats reflect the grant and a one-day streak.
	w = performRequest(r, "GET", "/api/users/profile/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)
	assert.Equal(t, float64(50), stats["xp"])
	assert.Equal(t, float64(1), stats["currentStreak"])
	assert.Equal(t, float64(1), stats["rank"])
	assert.Equal(t, float64(100), stats["percentile"])

	// The standing endpoint agrees.
	w = performRequest(r, "GET", "/api/leaderboard/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	standing := decodeBody(t, w)["standing"].(map[string]interface{})
	assert.Equal(t, float64(1), standing["position"])
}

// A failing judge run leaves the mission open and grants nothing.
func TestDailyMissionFlow_FailedRunGrantsNothing(t *testing.T) {
	db := setupIntegration(t, failingJudge())
	r := setupRouter()

	require.NoError(t, db.Create(&models.Question{
		ID:        "q-js-2",
		Title:     "FizzBuzz",
		Language:  "javascript",
		TestCases: `[{"input":"15","expected":"..."}]`,
	}).Error)

	token := createTestUser(t, r, "fail_user", "javascript")

	w := performRequest(r, "POST", "/api/missions/today/complete", map[string]interface{}{
		"code": "console.log('nope')",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, false, decodeBody(t, w)["completed"])

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "fail_user").Error)
	assert.Equal(t, 0, user.XP)
	assert.Equal(t, 0, user.QuestionsSolved)

	var progress models.DailyMissionProgress
	require.NoError(t, db.First(&progress, "user_id = ?", user.ID).Error)
	assert.False(t, progress.Completed)
}
