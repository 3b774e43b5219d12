// Package main initializes and starts the FitTrack sync server,
// setting up configuration, logging, database connections, repositories,
// services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/okoshkina/fittrack/internal/config"
	"github.com/okoshkina/fittrack/internal/db"
	"github.com/okoshkina/fittrack/internal/logger"
	"github.com/okoshkina/fittrack/internal/repository"
	"github.com/okoshkina/fittrack/internal/server/handler/http"
	"github.com/okoshkina/fittrack/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Prune expired bearer tokens in the background.
	db.StartTokenCleaner(context.Background(), postgresDB,
		time.Hour,
		zapLogger,
	)

	// Initialize repositories for authentication and synchronization.
	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	snapRepo := repository.NewPostgresSnapshotRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo)
	syncService := service.NewSyncService(snapRepo)

	// Create HTTP handlers for auth and sync endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	syncHandler := &http.SyncHandler{SyncService: syncService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, syncHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
