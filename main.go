// File: slotwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"slotwise/config"
	"slotwise/cron"
	"slotwise/database"
	appointmentRepo "slotwise/database/repository/appointment"
	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	scheduleService "slotwise/services/schedule"
	"slotwise/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := schedRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure schedule indexes: %v", err)
	}
	if err := apptRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	cancel()

	// services.
	svc := &scheduleService.DefaultScheduleService{
		Repo:                 schedRepo,
		Ledger:               apptRepo,
		Cache:                utils.GetCacheClient(),
		DayCacheTTL:          time.Duration(config.AppConfig.DayCacheTTLSecs) * time.Second,
		DefaultBufferMinutes: config.AppConfig.SlotBufferMinutes,
	}
	scheduleHandler := handlers.NewScheduleHandler(svc)

	// Background retention worker.
	cron.InitRetentionWorker(schedRepo)

	// Register routes.
	routes.RegisterRoutes(router, scheduleHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
