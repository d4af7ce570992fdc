package main

import (
	"context"
	"customerHub/app/echo-server/router"
	"customerHub/business/customer"
	"customerHub/internal/middleware"
	sqliteRepo "customerHub/internal/repository/sqlite"
	"customerHub/internal/rest"
	"customerHub/pkg/config"
	"customerHub/pkg/database"
	"customerHub/pkg/logger"
	"customerHub/pkg/metrics"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Customer Records API", "version", cfg.App.Version)

	db, err := database.InitSQLite(cfg)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err)
	}

	logger.Info("Using SQLite database", "path", cfg.Database.Path)

	if err := sqliteRepo.SeedCustomers(db); err != nil {
		logger.Fatal("Failed to seed database", "error", err)
	}

	metrics.Init()

	// Init repo
	customerRepo := sqliteRepo.NewCustomerRepository(db)

	// Init service
	customerService := customer.NewCustomerService(customerRepo)

	// Init handler
	customerHandler := rest.NewCustomerHandler(customerService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.RequestMetrics())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api")
	router.SetupCustomerRoutes(api, customerHandler)
	router.SetupStatsRoutes(api, customerHandler)
	router.SetupHealthRoutes(api, customerHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
