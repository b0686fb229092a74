package customer

import (
	"tenant-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, customerService CustomerServiceAPI, verifier middlewares.TokenVerifier, logger *zap.Logger) {
	customerController := &CustomerController{CustomerService: customerService, Logger: logger}

	customerGroup := r.Group("/customers")
	customerGroup.Use(middlewares.AuthMiddleware(verifier))
	{
		customerGroup.GET("", customerController.GetAllCustomers)
		customerGroup.GET("/:id", customerController.GetCustomer)

		customerGroup.POST("", middlewares.RequireAdmin(), customerController.CreateCustomer)
		customerGroup.PUT("/:id", middlewares.RequireAdmin(), customerController.UpdateCustomer)
		customerGroup.DELETE("/:id", middlewares.RequireAdmin(), customerController.DeleteCustomer)
	}
}
