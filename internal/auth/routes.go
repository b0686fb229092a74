package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, authService AuthServicePort, logger *zap.Logger) {
	authController := &AuthController{AuthService: authService, Logger: logger}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
	}
}
