package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dispatch_feed_sync/internal/config"
	"github.com/shenikar/dispatch_feed_sync/internal/observability"
	"github.com/shenikar/dispatch_feed_sync/internal/repository"
	"github.com/shenikar/dispatch_feed_sync/internal/service"
	"github.com/shenikar/dispatch_feed_sync/pkg/logger"
	"github.com/shenikar/dispatch_feed_sync/pkg/postgres"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runResolveStale(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)
	ctx := cmd.Context()

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, 2)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()

	resolver, err := service.NewStalenessResolver(
		repository.NewIncidentRepository(dbpool),
		log,
		clockwork.NewRealClock(),
		observability.NewMetrics(),
		cfg.ResolverInterval,
		cfg.ResolverThreshold(),
	)
	if err != nil {
		return err
	}

	res, err := resolver.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("stale pass failed: %w", err)
	}
	log.WithFields(logrus.Fields{
		"incidents": res.Incidents,
		"units":     res.Units,
	}).Info("Stale pass completed")
	return nil
}
