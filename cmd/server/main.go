package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tenant-admin-api/config"
	"tenant-admin-api/internal/auth"
	"tenant-admin-api/internal/database"
	"tenant-admin-api/internal/logging"
	"tenant-admin-api/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			zap.String("url", logging.SanitizeConnectionString(cfg.DatabaseURL)),
			zap.Error(err))
	}
	logger.Info("database connected", zap.String("url", logging.SanitizeConnectionString(cfg.DatabaseURL)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	credentials := auth.DefaultCredentials()
	if err := server.Prepare(ctx, db, credentials, logger); err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}

	router, err := server.NewRouter(cfg, db, credentials, logger)
	if err != nil {
		logger.Fatal("router setup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown failed", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		logger.Warn("closing database failed", zap.Error(err))
	}
}
