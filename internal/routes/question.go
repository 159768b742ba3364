package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yuvanesh-03/maverick-backend/internal/handlers"
	"github.com/Yuvanesh-03/maverick-backend/internal/middleware"
)

func RegisterQuestionRoutes(r gin.IRouter) {
	questions := r.Group("/questions")
	questions.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		questions.GET("", handlers.ListQuestions)
		questions.POST("", handlers.CreateQuestion)
	}
}
