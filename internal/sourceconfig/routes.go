package sourceconfig

import (
	"tenant-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, sourceConfigService SourceConfigServiceAPI, verifier middlewares.TokenVerifier, logger *zap.Logger) {
	sourceConfigController := &SourceConfigController{SourceConfigService: sourceConfigService, Logger: logger}

	sourceConfigGroup := r.Group("/customers/:id/source-config")
	sourceConfigGroup.Use(middlewares.AuthMiddleware(verifier))
	{
		sourceConfigGroup.GET("", sourceConfigController.GetSourceConfig)
		sourceConfigGroup.POST("", middlewares.RequireAdmin(), sourceConfigController.UpsertSourceConfig)
	}
}
