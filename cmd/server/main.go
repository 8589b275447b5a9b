// Package main runs the instance power controller as a local HTTP service.
//
// This is the development counterpart of the Lambda entrypoint: the same
// scheduler sits behind a gin router, so the full request flow can be
// exercised with curl instead of a Lambda runtime.
//
// Endpoints:
//   - POST /api/v1/instance/power
//   - GET  /health
//   - GET  /metrics
//
// Environment:
//   PORT: server port (default: 8080)
//   AWS_REGION: region override (optional)
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/handlers"
	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/logger"
	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/middleware"
	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/scheduler"
	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/services"
)

const (
	// ShutdownTimeout is the maximum time to wait for graceful shutdown
	ShutdownTimeout = 30 * time.Second
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := services.LoadConfig()
	if err != nil {
		logger.Logger.Fatal("Failed to load config", zap.Error(err))
	}

	ec2Client, err := services.NewEC2Client(context.Background(), cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to create EC2 client", zap.Error(err))
	}

	api := handlers.NewAPI(scheduler.NewHandler(ec2Client, logger.Logger), logger.Logger)
	router := setupRouter(api)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		logger.Logger.Info("Server listening", zap.String("addr", cfg.Addr()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	gracefulShutdown(server)
}

// setupRouter configures and returns the gin router with all routes and middleware
func setupRouter(api *handlers.API) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Logging(logger.Logger))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/instance/power", api.InstancePower)
	}

	return router
}

// gracefulShutdown handles graceful server shutdown
func gracefulShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Logger.Info("Shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
