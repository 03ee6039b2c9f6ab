package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-tracker/config"
	_ "go-resume-tracker/docs" // Important for Swagger
	v1 "go-resume-tracker/internal/delivery/http/v1"
	"go-resume-tracker/internal/repository/postgres"
	"go-resume-tracker/internal/usecase"
	"go-resume-tracker/pkg/database"
	"go-resume-tracker/pkg/logger"
	"go-resume-tracker/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Resume Tracker API
// @version         1.0
// @description     Backend for tracking job-application records tied to companies and contacts.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume tracker backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	// 5. Setup UseCases
	validate := validator.New()
	txRunner := postgres.NewTxRunner(dbPool)
	resumeUC := usecase.NewResumeUsecase(txRunner, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC: resumeUC,
		Config:   cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()
	logger.Log.Info("Server listening", "addr", srv.Addr)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Forced shutdown", "error", err)
	}
	logger.Log.Info("Server exited")
}
