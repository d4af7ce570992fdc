package rest

import (
	"context"
	"customerHub/domain"
	"customerHub/pkg/logger"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, update domain.CustomerUpdate) (domain.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
	GetStats(ctx context.Context) (domain.CustomerStats, error)
}

type CustomerHandler struct {
	customerService CustomerService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CustomerCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required"`
	Status      string  `json:"status"`
	TotalOrders int     `json:"totalOrders"`
	TotalSpent  float64 `json:"totalSpent"`
}

// CustomerUpdateRequest is the partial update payload; pointer fields
// distinguish an omitted field from an explicit zero.
type CustomerUpdateRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Status      *string  `json:"status"`
	TotalOrders *int     `json:"totalOrders"`
	TotalSpent  *float64 `json:"totalSpent"`
}

// ResponseError represent the response error struct
type ResponseError struct {
	Error string `json:"error"`
}

// ListCustomers returns every customer as a bare JSON array.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customers, err := h.customerService.ListCustomers(ctx)
	if err != nil {
		logger.Error("Failed to list customers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CustomerCreateRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate customer create", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: domain.ErrValidation.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.CreateCustomer(ctx, &domain.Customer{
		Name:        req.Name,
		Email:       req.Email,
		Status:      req.Status,
		TotalOrders: req.TotalOrders,
		TotalSpent:  req.TotalSpent,
	})
	if err != nil {
		logger.Error("Failed to create customer", err)
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id := c.Param("id")

	var customerID uint
	if _, err := fmt.Sscan(id, &customerID); err != nil {
		logger.Error("Invalid customer ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Invalid customer ID"})
	}

	var req CustomerUpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.UpdateCustomer(ctx, customerID, domain.CustomerUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Status:      req.Status,
		TotalOrders: req.TotalOrders,
		TotalSpent:  req.TotalSpent,
	})
	if err != nil {
		logger.Error("Failed to update customer", err)
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id := c.Param("id")

	var customerID uint
	if _, err := fmt.Sscan(id, &customerID); err != nil {
		logger.Error("Invalid customer ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Invalid customer ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.customerService.DeleteCustomer(ctx, customerID); err != nil {
		logger.Error("Failed to delete customer", err)
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CustomerHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.customerService.GetStats(ctx)
	if err != nil {
		logger.Error("Failed to get stats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, stats)
}

// HealthCheck reports liveness without touching the store.
func (h *CustomerHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
	})
}
