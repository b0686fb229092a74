package pipeline

import (
	"net/http"

	"tenant-admin-api/internal/apperrors"
	"tenant-admin-api/internal/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PipelineController struct {
	PipelineService PipelineServiceAPI
	Logger          *zap.Logger
}

func (pc *PipelineController) CreatePipeline(c *gin.Context) {
	customerID, ok := customer.ParseID(c, "id")
	if !ok {
		return
	}

	p, err := pc.PipelineService.CreatePipeline(c.Request.Context(), customerID)
	if err != nil {
		apperrors.Respond(c, pc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (pc *PipelineController) UpdatePipeline(c *gin.Context) {
	customerID, ok := customer.ParseID(c, "id")
	if !ok {
		return
	}

	var req PipelineUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	p, err := pc.PipelineService.UpdatePipeline(c.Request.Context(), customerID, *req.IsRunning)
	if err != nil {
		apperrors.Respond(c, pc.Logger, err)
		return
	}

	if pc.Logger != nil {
		pc.Logger.Info("pipeline state changed",
			zap.Int("customer_id", customerID),
			zap.Bool("is_running", p.IsRunning))
	}
	c.JSON(http.StatusOK, p)
}

func (pc *PipelineController) GetPipeline(c *gin.Context) {
	customerID, ok := customer.ParseID(c, "id")
	if !ok {
		return
	}

	p, err := pc.PipelineService.GetPipeline(c.Request.Context(), customerID)
	if err != nil {
		apperrors.Respond(c, pc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
