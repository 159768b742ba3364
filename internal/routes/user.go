package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/handlers"
	"github.com/Yuvanesh-03/maverick-backend/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		// Protected (specific paths first)
		protected := users.Group("/profile")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/stats", handlers.GetStats)
			protected.GET("", handlers.GetProfile)
			protected.PUT("", handlers.UpdateProfile)
		}

		users.POST("/onboarding", middleware.AuthMiddleware(), handlers.CompleteOnboarding)

		// Public (wildcard last)
		users.GET("/:username", handlers.GetPublicProfile)
	}
}
