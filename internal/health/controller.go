package health

import (
	"net/http"

	"tenant-admin-api/internal/apperrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthController struct {
	HealthService HealthServiceAPI
	Logger        *zap.Logger
}

func (hc *HealthController) GetSystemHealth(c *gin.Context) {
	report, err := hc.HealthService.GetSystemHealth(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, hc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
