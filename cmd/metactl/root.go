package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
	"github.com/ramonehamilton/mtg-meta-service/internal/config"
	"github.com/ramonehamilton/mtg-meta-service/internal/storage"
	"github.com/ramonehamilton/mtg-meta-service/internal/storage/repository"
)

var (
	dbPath     string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "metactl",
	Short: "Tournament meta analytics tool",
	Long:  "Query archetype meta shares, win rates and matchup matrices from a tournament results database.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".mtg-meta-service", "meta.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(matchupsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// openEngine opens the database and builds an analytics engine over it.
// The caller must invoke the returned cleanup function.
func openEngine() (*analytics.Engine, func(), error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if rootCmd.PersistentFlags().Changed("db") || cfg.Database.Path == "" {
		cfg.Database.Path = dbPath
	}

	dbConfig := storage.DefaultConfig(cfg.Database.Path)
	dbConfig.AutoMigrate = cfg.Database.AutoMigrate
	db, err := storage.Open(dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	repo := repository.NewMetaRepository(db.Conn())
	engine := analytics.NewEngine(repo, &analytics.EngineConfig{
		MinMatches: cfg.Analytics.MinMatches,
	})
	cleanup := func() {
		_ = db.Close()
	}
	return engine, cleanup, nil
}
