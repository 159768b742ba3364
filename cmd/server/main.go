package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Yuvanesh-03/maverick-backend/internal/config"
	"github.com/Yuvanesh-03/maverick-backend/internal/database"
	"github.com/Yuvanesh-03/maverick-backend/internal/gamification"
	"github.com/Yuvanesh-03/maverick-backend/internal/handlers"
	"github.com/Yuvanesh-03/maverick-backend/internal/middleware"
	"github.com/Yuvanesh-03/maverick-backend/internal/migrations"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	"github.com/Yuvanesh-03/maverick-backend/internal/routes"
	"github.com/Yuvanesh-03/maverick-backend/internal/seeds"
	"github.com/Yuvanesh-03/maverick-backend/internal/services"
	"github.com/Yuvanesh-03/maverick-backend/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Maverick Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	logger.Info().Msg("🔄 Running Database Migrations...")
	if err := database.DB.AutoMigrate(
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
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	if err := migrations.NewMigrator(database.DB).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Info().Msg("✅ Database Migrations Complete")

	// Badge definitions are part of the deploy, not operator-run seed data.
	seeds.SeedBadges()

	handlers.InitServices(database.DB, services.NewPistonJudge(), gamification.RealClock{})

	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	api.Use(middleware.OptionalAuthMiddleware())
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterUserRoutes(api)
		routes.RegisterMissionRoutes(api)
		routes.RegisterBadgeRoutes(api)
		routes.RegisterLeaderboardRoutes(api)
		routes.RegisterActivityRoutes(api)
		routes.RegisterQuestionRoutes(api)
	}

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status":  status,
			"message": "Maverick Backend is running 🚀",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("🛑 Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("✅ Server exited gracefully")
}
