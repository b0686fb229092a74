package auth

import (
	"net/http"

	"tenant-admin-api/internal/apperrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService AuthServicePort
	Logger      *zap.Logger
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	res, err := ac.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if ac.Logger != nil {
			ac.Logger.Info("login rejected", zap.String("email", req.Email))
		}
		apperrors.Respond(c, ac.Logger, err)
		return
	}

	if ac.Logger != nil {
		ac.Logger.Info("login succeeded", zap.String("email", res.Email), zap.String("role", res.Role))
	}
	c.JSON(http.StatusOK, res)
}
