package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/oceanofgigs/engine/internal/api"
	"github.com/oceanofgigs/engine/internal/events"
	"github.com/oceanofgigs/engine/internal/repository"
	"github.com/oceanofgigs/engine/pkg/config"
	"github.com/oceanofgigs/engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting OceanOfGigs API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// The store lives for the whole process; nothing is persisted.
	store, err := repository.NewInMemoryStore(ctx)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}
	if cfg.SeedDemoUsers {
		if err := repository.SeedDemoUsers(ctx, store); err != nil {
			log.Fatal("Failed to seed demo users", zap.Error(err))
		}
		log.Info("Demo users seeded")
	}
	log.Info("Store ready", zap.Any("counts", store.Stats()))

	bus := events.NewBus()
	if err := events.SubscribeActivityLog(bus); err != nil {
		log.Fatal("Failed to subscribe activity log", zap.Error(err))
	}

	// Create router with dependencies
	dep := api.NewHandlers(store, bus)
	dep.AllowedOrigins = cfg.AllowedOrigins()
	dep.RateLimitRPS = cfg.RateLimitRPS
	dep.RateLimitBurst = cfg.RateLimitBurst
	router := api.NewRouter(ctx, dep)

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
