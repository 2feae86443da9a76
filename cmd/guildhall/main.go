package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guildhall-game/guildhall/internal/balancing"
	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/history"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/npc"
	"github.com/guildhall-game/guildhall/internal/server"
)

func main() {
	configFile := flag.String("config", "data/config.yaml", "Path to game config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	balancingDir := flag.String("balancing", "data/balancing", "Path to balancing tables directory")
	namesFile := flag.String("names", "data/names.yaml", "Path to NPC name pool YAML file")
	listenAddress := flag.String("listen", "", "Listen address override (host:port)")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("Starting Guild Hall server")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", "path", *configFile, "error", err)
	}
	if *listenAddress != "" {
		cfg.Server.ListenAddress = *listenAddress
	}

	if len(cfg.Server.AllowedOrigins) == 0 {
		logger.Info("WebSocket CORS policy", "mode", "same-origin")
	} else if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		logger.Warn("WebSocket CORS allows all origins (not recommended for production)")
	} else {
		logger.Info("WebSocket CORS policy", "allowed_origins", cfg.Server.AllowedOrigins)
	}

	// Balancing tables load in the background; queries fall back to
	// safe defaults until they arrive
	table := balancing.NewTable()
	table.LoadDirAsync(*balancingDir)

	names, err := npc.LoadNamePool(*namesFile)
	if err != nil {
		logger.Warn("Failed to load name pool, using built-in names", "path", *namesFile, "error", err)
		names = npc.DefaultNamePool()
	}

	srv := server.NewServer(cfg, table, names)

	if cfg.History.Enabled {
		chronicle, err := history.Open(cfg.History)
		if err != nil {
			log.Fatalf("Failed to open chronicle: %v", err)
		}
		defer chronicle.Close()
		srv.SetChronicle(chronicle)
		logger.Info("Chronicle enabled", "dialect", cfg.History.Dialect)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	logger.Info("Guild Hall running", "address", cfg.Server.ListenAddress)
	logger.Info("Press Ctrl+C to shutdown")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
