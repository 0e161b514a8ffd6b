package main

import (
	"fmt"

	"github.com/shenikar/dispatch_feed_sync/internal/config"
	"github.com/shenikar/dispatch_feed_sync/pkg/logger"
	"github.com/shenikar/dispatch_feed_sync/pkg/postgres"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.WithField("dir", migrationsDir).Info("Running database migrations...")
	if err := postgres.MigrateUp(migrationsDir, cfg.DatabaseURL); err != nil {
		return err
	}
	log.Info("Database migrations applied successfully")
	return nil
}

func runMigrateUp(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return runMigrations(cfg, logger.New(cfg.LogLevel))
}

func runMigrateDown(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	if err := postgres.MigrateDown(migrationsDir, cfg.DatabaseURL, downSteps); err != nil {
		return err
	}
	log.WithField("steps", downSteps).Info("Database migrations rolled back")
	return nil
}
