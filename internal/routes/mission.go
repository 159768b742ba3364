package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/handlers"
	"github.com/Yuvanesh-03/maverick-backend/internal/middleware"
)

func RegisterMissionRoutes(r gin.IRouter) {
	missions := r.Group("/missions")
	missions.Use(middleware.AuthMiddleware())
	{
		missions.GET("/today", handlers.GetTodayMission)
		missions.PUT("/today/code", handlers.SaveMissionCode)
		missions.POST("/today/run", middleware.ExecuteRateLimit(), handlers.RunMissionCode)
		missions.POST("/today/complete", middleware.ExecuteRateLimit(), handlers.CompleteMission)
		missions.GET("/history", handlers.GetMissionHistory)
	}
}
