package pipeline

import (
	"tenant-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, pipelineService PipelineServiceAPI, verifier middlewares.TokenVerifier, logger *zap.Logger) {
	pipelineController := &PipelineController{PipelineService: pipelineService, Logger: logger}

	pipelineGroup := r.Group("/customers/:id/pipeline")
	pipelineGroup.Use(middlewares.AuthMiddleware(verifier))
	{
		pipelineGroup.GET("", pipelineController.GetPipeline)
		pipelineGroup.POST("", middlewares.RequireAdmin(), pipelineController.CreatePipeline)
		pipelineGroup.PUT("", middlewares.RequireAdmin(), pipelineController.UpdatePipeline)
	}
}
