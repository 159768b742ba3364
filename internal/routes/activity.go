package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/handlers"
	"github.com/Yuvanesh-03/maverick-backend/internal/middleware"
)

func RegisterActivityRoutes(r gin.IRouter) {
	activity := r.Group("/activity")
	activity.Use(middleware.AuthMiddleware())
	{
		activity.POST("", handlers.LogActivityEvent)
		activity.GET("/me", handlers.GetMyActivity)
	}

	assessments := r.Group("/assessments")
	assessments.Use(middleware.AuthMiddleware())
	{
		assessments.POST("/submit", middleware.ExecuteRateLimit(), handlers.SubmitAssessment)
	}

	hackathons := r.Group("/hackathons")
	hackathons.Use(middleware.AuthMiddleware())
	{
		hackathons.POST("/result", handlers.SubmitHackathonResult)
	}
}
