package user

import (
	"tenant-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, userService UserServiceAPI, verifier middlewares.TokenVerifier, logger *zap.Logger) {
	userController := &UserController{UserService: userService, Logger: logger}

	userGroup := r.Group("/users")
	userGroup.Use(middlewares.AuthMiddleware(verifier), middlewares.RequireAdmin())
	{
		userGroup.POST("", userController.CreateUser)
		userGroup.GET("", userController.GetAllUsers)
		userGroup.PUT("/:id", userController.UpdateUser)
		userGroup.DELETE("/:id", userController.DeleteUser)
	}
}
