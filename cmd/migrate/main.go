package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"budgetapp/internal/config"
	"budgetapp/internal/database"
	"budgetapp/internal/logger"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: migrate <up|down|version> [N]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Remote.Enabled {
		return fmt.Errorf("remote backend is disabled; set REMOTE_ENABLED=true to migrate it")
	}

	command := args[0]
	return database.Migrate("file://migrations", cfg.Remote.URL(), func(m *migrate.Migrate) error {
		switch command {
		case "up":
			if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration up failed: %w", err)
			}
			logger.Get().Info("Migrations applied successfully")

		case "down":
			steps := 1
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid step count: %w", err)
				}
				steps = n
			}
			if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration down failed: %w", err)
			}
			logger.Get().Infof("Rolled back %d migration(s)", steps)

		case "version":
			version, dirty, err := m.Version()
			if err != nil {
				return fmt.Errorf("failed to get version: %w", err)
			}
			logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

		default:
			return fmt.Errorf("unknown command: %s (use up, down, or version)", command)
		}
		return nil
	})
}
