// Package main provides the standalone REST API server for meta analytics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
	"github.com/ramonehamilton/mtg-meta-service/internal/api"
	"github.com/ramonehamilton/mtg-meta-service/internal/config"
	"github.com/ramonehamilton/mtg-meta-service/internal/storage"
	"github.com/ramonehamilton/mtg-meta-service/internal/storage/repository"
)

var (
	port       = flag.Int("port", 0, "API server port (overrides config)")
	dbPath     = flag.String("db-path", "", "Database path (overrides config)")
	configPath = flag.String("config", "", "Config file path (default: ~/.mtg-meta-service/config.toml)")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	fmt.Println("MTG Meta Service - REST API Server")
	fmt.Println("==================================")
	fmt.Println()
	fmt.Printf("Database: %s\n", cfg.Database.Path)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	dbConfig := storage.DefaultConfig(cfg.Database.Path)
	dbConfig.AutoMigrate = cfg.Database.AutoMigrate
	db, err := storage.Open(dbConfig)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	repo := repository.NewMetaRepository(db.Conn())
	engine := analytics.NewEngine(repo, &analytics.EngineConfig{
		MinMatches: cfg.Analytics.MinMatches,
	})

	server := api.NewServer(cfg, engine)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	fmt.Printf("API server running at http://localhost:%d\n", cfg.Server.Port)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("API server error: %v", err)
		}
	case <-sigChan:
	}

	fmt.Println()
	fmt.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("API server stopped.")
}

func loadConfig() (*config.Config, error) {
	if *configPath != "" {
		return config.Load(*configPath)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	return config.Load(filepath.Join(home, ".mtg-meta-service", "config.toml"))
}
