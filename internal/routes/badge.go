package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/handlers"
	"github.com/Yuvanesh-03/maverick-backend/internal/middleware"
)

func RegisterBadgeRoutes(r gin.IRouter) {
	badges := r.Group("/badges")
	{
		badges.GET("", handlers.ListBadges)
		badges.GET("/me", middleware.AuthMiddleware(), handlers.GetMyBadges)
		badges.POST("/:id/claim", middleware.AuthMiddleware(), handlers.ClaimBadge)
	}
}
