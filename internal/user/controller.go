package user

import (
	"net/http"
	"strconv"

	"tenant-admin-api/internal/apperrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	UserService UserServiceAPI
	Logger      *zap.Logger
}

func parseUserID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	u, err := uc.UserService.CreateUser(c.Request.Context(), req)
	if err != nil {
		apperrors.Respond(c, uc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, uc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	u, err := uc.UserService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		apperrors.Respond(c, uc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := uc.UserService.DeleteUser(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, uc.Logger, err)
		return
	}

	if uc.Logger != nil {
		uc.Logger.Info("user deleted", zap.Int("user_id", id))
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
