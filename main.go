package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/routeforge-hq/routeforge-engine/pkg/aggregator"
	"github.com/routeforge-hq/routeforge-engine/pkg/bridge"
	"github.com/routeforge-hq/routeforge-engine/pkg/config"
	"github.com/routeforge-hq/routeforge-engine/pkg/engine"
	"github.com/routeforge-hq/routeforge-engine/pkg/health"
	"github.com/routeforge-hq/routeforge-engine/pkg/logger"
	"github.com/routeforge-hq/routeforge-engine/pkg/store"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.NewStdLogger(cfg.LoggerConfig.Coloring, cfg.LoggerConfig.Level)

	// Wire the engine to its collaborators
	st := store.NewMemoryStore()
	agg := aggregator.NewHTTPClient(cfg.AggregatorEndpoint, logr)
	br := bridge.NewHTTPClient(cfg.BridgeEndpoint, logr)
	eng := engine.New(cfg, st, agg, br, logr)

	// Start the health and metrics server
	healthServer := health.NewServer(cfg.MetricsPort, eng)
	go healthServer.Start()

	// Schedule the expiry reaper
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every "+cfg.ReaperInterval.String(), func() {
		eng.CleanupExpiredIntents()
	}); err != nil {
		log.Fatalf("Failed to schedule expiry reaper: %v", err)
	}
	scheduler.Start()

	logr.Info("Engine started (solver %s, reaper every %s)", cfg.SolverID, cfg.ReaperInterval)

	// Wait for termination signal
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	<-signalCh

	log.Println("Received termination signal, shutting down gracefully...")
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(10 * time.Second):
		log.Println("Timed out waiting for running jobs, exiting")
	}
}
