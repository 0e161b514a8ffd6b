package service

import (
	"context"
	"errors"
	"sort"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/shenikar/dispatch_feed_sync/internal/observability"
	"github.com/sirupsen/logrus"
)

// Upserter применяет дельты к хранилищу. Ошибка на одном инциденте
// логируется и не прерывает обработку остальных.
type Upserter struct {
	repo       IncidentRepository
	logger     *logrus.Logger
	clock      clockwork.Clock
	metrics    *observability.Metrics
	reactivate bool
}

func NewUpserter(repo IncidentRepository, logger *logrus.Logger, clock clockwork.Clock, metrics *observability.Metrics, reactivate bool) *Upserter {
	return &Upserter{
		repo:       repo,
		logger:     logger,
		clock:      clock,
		metrics:    metrics,
		reactivate: reactivate,
	}
}

// ApplyIncidents вставляет/обновляет живые инциденты и отмечает выпавшие из ленты
func (u *Upserter) ApplyIncidents(ctx context.Context, live, resolved []models.LiveIncident, parserTag string) models.IncidentResult {
	log := u.logger.WithFields(logrus.Fields{
		"service": "upserter",
		"method":  "ApplyIncidents",
		"parser":  parserTag,
	})
	now := u.clock.Now().UTC()

	var res models.IncidentResult
	for _, incident := range live {
		if err := u.repo.UpsertIncident(ctx, incident, parserTag, now, u.reactivate); err != nil {
			log.WithError(err).WithField("incident", incident.Number).Warn("Failed to upsert incident, skipping")
			u.metrics.PersistenceFailures.WithLabelValues("incident").Inc()
			res.Failed++
			continue
		}
		res.Upserted++
	}

	for _, incident := range resolved {
		changed, err := u.repo.ResolveIncident(ctx, incident.Number, now)
		if err != nil {
			log.WithError(err).WithField("incident", incident.Number).Warn("Failed to resolve incident, skipping")
			u.metrics.PersistenceFailures.WithLabelValues("incident").Inc()
			res.Failed++
			continue
		}
		if changed {
			res.Resolved++
		}
	}

	log.WithFields(logrus.Fields{
		"upserted": res.Upserted,
		"resolved": res.Resolved,
		"failed":   res.Failed,
	}).Debug("Incidents applied")
	return res
}

// ApplyUnits при assigned=true вставляет подразделения или обновляет last_seen,
// при assigned=false отмечает их снятыми. Каждый инцидент - отдельная транзакция.
func (u *Upserter) ApplyUnits(ctx context.Context, unitsByIncident map[int64][]models.LiveUnit, assigned bool) models.UnitResult {
	log := u.logger.WithFields(logrus.Fields{
		"service":  "upserter",
		"method":   "ApplyUnits",
		"assigned": assigned,
	})
	now := u.clock.Now().UTC()

	numbers := make([]int64, 0, len(unitsByIncident))
	for number := range unitsByIncident {
		numbers = append(numbers, number)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	var res models.UnitResult
	for _, number := range numbers {
		units := unitsByIncident[number]
		if len(units) == 0 {
			continue
		}

		var (
			affected int
			err      error
		)
		if assigned {
			affected, err = u.repo.UpsertUnits(ctx, number, units, now, u.reactivate)
		} else {
			affected, err = u.repo.RemoveUnits(ctx, number, shortNames(units), now)
		}

		switch {
		case errors.Is(err, ErrIncidentNotFound):
			log.WithField("incident", number).Warn("Parent incident missing, skipping unit batch")
			res.Skipped += len(units)
		case err != nil:
			log.WithError(err).WithField("incident", number).Warn("Failed to apply unit batch, skipping")
			u.metrics.PersistenceFailures.WithLabelValues("unit").Inc()
			res.Failed += len(units)
		default:
			res.Affected += affected
		}
	}
	return res
}

func shortNames(units []models.LiveUnit) []string {
	names := make([]string, 0, len(units))
	for _, unit := range units {
		names = append(names, unit.ShortName)
	}
	return names
}
