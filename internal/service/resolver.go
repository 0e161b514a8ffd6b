package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/shenikar/dispatch_feed_sync/internal/observability"
	"github.com/sirupsen/logrus"
)

// StalenessResolver по своему таймеру разрешает инциденты и снимает
// подразделения, которые лента давно не подтверждала
type StalenessResolver struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	clock     clockwork.Clock
	metrics   *observability.Metrics
	interval  time.Duration
	threshold time.Duration

	running sync.Mutex
}

func NewStalenessResolver(repo IncidentRepository, logger *logrus.Logger, clock clockwork.Clock, metrics *observability.Metrics, interval, threshold time.Duration) (*StalenessResolver, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: resolver interval must be positive, got %s", ErrConfiguration, interval)
	}
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: resolver threshold must be positive, got %s", ErrConfiguration, threshold)
	}
	return &StalenessResolver{
		repo:      repo,
		logger:    logger,
		clock:     clock,
		metrics:   metrics,
		interval:  interval,
		threshold: threshold,
	}, nil
}

// Resolve выполняет один проход. Если предыдущий проход еще идет,
// возвращает ErrPassInProgress и ничего не делает.
func (r *StalenessResolver) Resolve(ctx context.Context) (models.ResolveResult, error) {
	if !r.running.TryLock() {
		return models.ResolveResult{}, ErrPassInProgress
	}
	defer r.running.Unlock()

	now := r.clock.Now().UTC()
	cutoff := now.Add(-r.threshold)
	log := r.logger.WithFields(logrus.Fields{
		"service": "resolver",
		"method":  "Resolve",
		"cutoff":  cutoff,
	})
	log.Info("Resolving stale incidents and units")

	var (
		res  models.ResolveResult
		errs []error
	)

	incidents, err := r.repo.ResolveStaleIncidents(ctx, now, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to resolve stale incidents")
		errs = append(errs, fmt.Errorf("resolve stale incidents: %w", err))
	} else {
		res.Incidents = incidents
		r.metrics.StaleResolved.WithLabelValues("incident").Add(float64(incidents))
	}

	units, err := r.repo.RemoveStaleUnits(ctx, now, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to remove stale units")
		errs = append(errs, fmt.Errorf("remove stale units: %w", err))
	} else {
		res.Units = units
		r.metrics.StaleResolved.WithLabelValues("unit").Add(float64(units))
	}

	log.WithFields(logrus.Fields{
		"incidents": res.Incidents,
		"units":     res.Units,
	}).Info("Stale pass completed")
	return res, errors.Join(errs...)
}

// Run выполняет проход сразу и далее по таймеру до отмены контекста
func (r *StalenessResolver) Run(ctx context.Context) error {
	log := r.logger.WithFields(logrus.Fields{
		"service":   "resolver",
		"interval":  r.interval,
		"threshold": r.threshold,
	})
	log.Info("Starting staleness resolver")

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.Resolve(ctx); err != nil && !errors.Is(err, ErrPassInProgress) {
			log.WithError(err).Warn("Stale pass finished with errors")
		}

		select {
		case <-ctx.Done():
			log.Info("Stopping staleness resolver")
			return nil
		case <-ticker.Chan():
		}
	}
}
