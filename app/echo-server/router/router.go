package router

import (
	"customerHub/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCustomerRoutes(api *echo.Group, handler *rest.CustomerHandler) {
	customers := api.Group("/customers")

	customers.GET("", handler.ListCustomers)
	customers.POST("", handler.CreateCustomer)
	customers.PUT("/:id", handler.UpdateCustomer)
	customers.DELETE("/:id", handler.DeleteCustomer)
}

func SetupStatsRoutes(api *echo.Group, handler *rest.CustomerHandler) {
	api.GET("/stats", handler.GetStats)
}

func SetupHealthRoutes(api *echo.Group, handler *rest.CustomerHandler) {
	api.GET("/health", handler.HealthCheck)
}
