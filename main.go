package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calcetto-tracker/internal/config"
	"calcetto-tracker/internal/datasource"
	server "calcetto-tracker/internal/http"
	"calcetto-tracker/internal/matches"
	"calcetto-tracker/internal/metrics"
	"calcetto-tracker/internal/registry"
	"calcetto-tracker/internal/roster"

	"github.com/charmbracelet/log"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	resolver := datasource.New(cfg.DataDir, cfg.MockDataDir)
	if _, err := resolver.Resolve(); err != nil {
		log.Fatalf("Failed to prepare data roots: %s", err)
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	playerStore := roster.New(resolver)
	deletedStore := registry.New(resolver)
	matchStore := matches.New(resolver, playerStore, deletedStore, metricsSvc)

	s := server.NewServer(
		playerStore,
		matchStore,
		resolver,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
