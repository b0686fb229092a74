package customer

import (
	"net/http"
	"strconv"

	"tenant-admin-api/internal/apperrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerController struct {
	CustomerService CustomerServiceAPI
	Logger          *zap.Logger
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name})
		return 0, false
	}
	return id, true
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	customer, err := cc.CustomerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		apperrors.Respond(c, cc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.CustomerService.GetAllCustomers(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, cc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}

	customer, err := cc.CustomerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		apperrors.Respond(c, cc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}

	var req CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	customer, err := cc.CustomerService.UpdateCustomer(c.Request.Context(), id, req)
	if err != nil {
		apperrors.Respond(c, cc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}

	if err := cc.CustomerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, cc.Logger, err)
		return
	}

	if cc.Logger != nil {
		cc.Logger.Info("customer deleted", zap.Int("customer_id", id))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
