package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Yuvanesh-03/maverick-backend/internal/config"
	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/handlers"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	"github.com/Yuvanesh-03/maverick-backend/internal/routes"
	"github.com/Yuvanesh-03/maverick-backend/internal/services"
)

// stubJudge is a canned code runner so flows are judged without the
// external execution API.
type stubJudge struct {
	success bool
	tests   int
	passed  int
}

func passingJudge() *stubJudge { return &stubJudge{success: true, tests: 2, passed: 2} }
func failingJudge() *stubJudge { return &stubJudge{success: false, tests: 2, passed: 1} }

func (j *stubJudge) Run(ctx context.Context, code, language string, testCases []models.TestCase, timeLimit, memoryLimit int) (*services.RunResult, error) {
	results := make([]services.TestResult, j.tests)
	for i := range results {
		results[i] = services.TestResult{Passed: i < j.passed}
	}
	return &services.RunResult{Success: j.success, TestResults: results}, nil
}

// setupIntegration wires an isolated sqlite DB into the global handles and
// re-initializes the handler services with the given judge.
func setupIntegration(t *testing.T, judge services.Judge) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTSecret: "test_secret_key_12345",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.ActivityEvent{},
		&models.Question{},
		&models.DailyMissionProgress{},
		&models.Badge{},
		&models.UserBadge{},
		&models.AssessmentResult{},
		&models.HackathonResult{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	// Handlers use the package-level DB handle.
	database.DB = db

	handlers.InitServices(db, judge, gamification.RealClock{})
	return db
}

// setupRouter builds the API surface without the per-IP rate limiters, which
// would throttle a fast test run.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	routes.RegisterAuthRoutes(api.Group("/auth"))
	routes.RegisterUserRoutes(api)
	routes.RegisterBadgeRoutes(api)
	routes.RegisterLeaderboardRoutes(api)
	routes.RegisterActivityRoutes(api)
	routes.RegisterMissionRoutes(api)

	return r
}

func performRequest(r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// createTestUser registers an account, completes onboarding and returns the
// auth token.
func createTestUser(t *testing.T, r *gin.Engine, username, language string) string {
	t.Helper()

	w := performRequest(r, "POST", "/api/auth/register", map[string]interface{}{
		"name":     username,
		"email":    username + "@example.com",
		"username": username,
		"password": "password123",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed (%d): %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("register did not return a token")
	}

	w = performRequest(r, "POST", "/api/users/onboarding", map[string]interface{}{
		"preferredLanguage": language,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("onboarding failed (%d): %s", w.Code, w.Body.String())
	}

	return token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return resp
}
