package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	authService "taskhub/internal/application/auth"
	taskService "taskhub/internal/application/task"
	"taskhub/internal/delivery/http/handler"
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router"
	"taskhub/internal/infrastructure/config"
	"taskhub/internal/infrastructure/database"
	"taskhub/internal/infrastructure/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration; JWT_SECRET and TOKEN_EXPIRY are required
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	tokens := authService.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenExpiry)
	authSvc := authService.NewService(userRepo, tokens, logger)
	taskSvc := taskService.NewService(taskRepo, logger)

	// Initialize handlers
	handlers := router.Handlers{
		Auth: handler.NewAuthHandler(authSvc),
		Task: handler.NewTaskHandler(taskSvc),
	}

	corsConfig := middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}
	mux := router.Setup(handlers, authSvc, corsConfig)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server starting", "addr", addr, "database", cfg.DatabasePath, "tokenExpiry", cfg.TokenExpiry.String())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
