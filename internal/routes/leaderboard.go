package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/handlers"
	"github.com/Yuvanesh-03/maverick-backend/internal/middleware"
)

func RegisterLeaderboardRoutes(r gin.IRouter) {
	board := r.Group("/leaderboard")
	{
		board.GET("/global", handlers.GetGlobalLeaderboard)
		board.GET("/me", middleware.AuthMiddleware(), handlers.GetMyStanding)
	}
}
