package sourceconfig

import (
	"net/http"

	"tenant-admin-api/internal/apperrors"
	"tenant-admin-api/internal/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SourceConfigController struct {
	SourceConfigService SourceConfigServiceAPI
	Logger              *zap.Logger
}

// POST /customers/:id/source-config
func (sc *SourceConfigController) UpsertSourceConfig(c *gin.Context) {
	customerID, ok := customer.ParseID(c, "id")
	if !ok {
		return
	}

	var req SourceConfigInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	cfg, err := sc.SourceConfigService.UpsertSourceConfig(c.Request.Context(), customerID, req)
	if err != nil {
		apperrors.Respond(c, sc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// GET /customers/:id/source-config
func (sc *SourceConfigController) GetSourceConfig(c *gin.Context) {
	customerID, ok := customer.ParseID(c, "id")
	if !ok {
		return
	}

	cfg, err := sc.SourceConfigService.GetSourceConfig(c.Request.Context(), customerID)
	if err != nil {
		apperrors.Respond(c, sc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}
