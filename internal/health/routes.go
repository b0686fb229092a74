package health

import (
	"tenant-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, healthService HealthServiceAPI, verifier middlewares.TokenVerifier, logger *zap.Logger) {
	healthController := &HealthController{HealthService: healthService, Logger: logger}

	r.GET("/system-health", middlewares.AuthMiddleware(verifier), healthController.GetSystemHealth)
}
