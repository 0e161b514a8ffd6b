package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/shenikar/dispatch_feed_sync/internal/observability"
	"github.com/sirupsen/logrus"
)

// UpdaterParams - зависимости и настройки планировщика опроса
type UpdaterParams struct {
	Feed     FeedClient
	Upserter *Upserter
	Audit    *FeedRequestLogger
	// Repo нужен только для теплого старта
	Repo IncidentRepository
	// Geocoder == nil - геокодирование выключено
	Geocoder Geocoder
	// Publisher == nil - события не публикуются
	Publisher EventPublisher

	Logger  *logrus.Logger
	Clock   clockwork.Clock
	Metrics *observability.Metrics

	Interval      time.Duration
	WarmStart     bool
	AddressSuffix string
}

// Updater опрашивает ленту по таймеру и сверяет ее с закэшированным снимком.
// Снимок принадлежит только Updater и меняется только внутри цикла.
type Updater struct {
	feed          FeedClient
	upserter      *Upserter
	audit         *FeedRequestLogger
	repo          IncidentRepository
	geocoder      Geocoder
	publisher     EventPublisher
	logger        *logrus.Logger
	clock         clockwork.Clock
	metrics       *observability.Metrics
	interval      time.Duration
	warmStart     bool
	addressSuffix string

	running sync.Mutex
	cache   map[int64]models.LiveIncident

	statusMu sync.RWMutex
	status   models.FeedStatus
	ready    atomic.Bool
}

func NewUpdater(p UpdaterParams) (*Updater, error) {
	if p.Interval <= 0 {
		return nil, fmt.Errorf("%w: poll interval must be positive, got %s", ErrConfiguration, p.Interval)
	}
	if p.Feed == nil || p.Upserter == nil || p.Audit == nil {
		return nil, fmt.Errorf("%w: feed client, upserter and audit logger are required", ErrConfiguration)
	}
	if p.WarmStart && p.Repo == nil {
		return nil, fmt.Errorf("%w: warm start requires an incident repository", ErrConfiguration)
	}
	return &Updater{
		feed:          p.Feed,
		upserter:      p.Upserter,
		audit:         p.Audit,
		repo:          p.Repo,
		geocoder:      p.Geocoder,
		publisher:     p.Publisher,
		logger:        p.Logger,
		clock:         p.Clock,
		metrics:       p.Metrics,
		interval:      p.Interval,
		warmStart:     p.WarmStart,
		addressSuffix: p.AddressSuffix,
		cache:         map[int64]models.LiveIncident{},
	}, nil
}

// Run выполняет цикл сразу и далее по таймеру до отмены контекста.
// Циклы выполняются последовательно; тики во время цикла отбрасываются.
func (u *Updater) Run(ctx context.Context) error {
	log := u.logger.WithFields(logrus.Fields{
		"service":  "updater",
		"interval": u.interval,
		"parser":   u.feed.Parser(),
	})
	log.Info("Starting incident updater")

	if u.warmStart {
		u.seedCache(ctx)
	}

	ticker := u.clock.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		if _, err := u.RunCycle(ctx); err != nil && !errors.Is(err, ErrPassInProgress) {
			log.WithError(err).Debug("Cycle skipped")
		}

		select {
		case <-ctx.Done():
			log.Info("Stopping incident updater")
			return nil
		case <-ticker.Chan():
		}
	}
}

// RunCycle выполняет один цикл опроса. Параллельный вызов получает ErrPassInProgress.
func (u *Updater) RunCycle(ctx context.Context) (models.CycleResult, error) {
	if !u.running.TryLock() {
		u.metrics.PollCycles.WithLabelValues("skipped").Inc()
		return models.CycleResult{}, ErrPassInProgress
	}
	defer u.running.Unlock()

	return u.cycle(ctx)
}

func (u *Updater) cycle(ctx context.Context) (models.CycleResult, error) {
	parser := u.feed.Parser()
	start := u.clock.Now()
	res := models.CycleResult{StartedAt: start.UTC()}
	log := u.logger.WithFields(logrus.Fields{
		"service": "updater",
		"method":  "RunCycle",
		"parser":  parser,
	})
	log.Info("Updating incidents...")

	live, err := u.feed.Fetch(ctx)
	fetchTime := u.clock.Since(start)
	u.metrics.FetchDuration.Observe(fetchTime.Seconds())
	if err != nil {
		log.WithError(err).Error("Error fetching incidents")
		u.audit.Record(ctx, &models.FeedRequest{
			RequestedAt:   start.UTC(),
			ExecutionTime: fetchTime,
			Success:       false,
			Parser:        parser,
			Message:       err.Error(),
		})
		u.metrics.PollCycles.WithLabelValues("fetch_error").Inc()
		res.Duration = u.clock.Since(start)
		u.recordStatus(res)
		return res, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	liveCount := len(live)
	u.audit.Record(ctx, &models.FeedRequest{
		RequestedAt:   start.UTC(),
		ExecutionTime: fetchTime,
		Success:       true,
		Parser:        parser,
		Incidents:     &liveCount,
	})
	log.WithFields(logrus.Fields{
		"live":          liveCount,
		"fetch_seconds": fetchTime.Seconds(),
	}).Info("Found live incidents")

	diff := Diff(u.cache, live)
	if diff.Duplicates > 0 {
		log.WithField("duplicates", diff.Duplicates).Warn("Feed returned duplicate incident numbers, keeping first occurrence")
	}
	for _, incident := range diff.Live {
		if incident.Category == models.CategoryUnknown {
			log.Warnf("Unknown incident: %s", describeIncident(incident))
		}
	}
	log.Infof("New: %d | Known: %d | Resolved: %d", len(diff.New), len(diff.Known), len(diff.Resolved))
	u.observeDiff(diff)

	coords := u.geocodeNew(ctx, diff.New)
	applyCoordinates(diff.New, coords)
	applyCoordinates(diff.Live, coords)

	// Сначала все инциденты цикла, потом назначенные подразделения, потом снятые
	res.Incidents = u.upserter.ApplyIncidents(ctx, diff.Live, diff.Resolved, parser)
	res.Assigned = u.upserter.ApplyUnits(ctx, diff.NewlyAssigned, true)
	res.Persisted = u.upserter.ApplyUnits(ctx, diff.Persisted, true)
	res.Unassigned = u.upserter.ApplyUnits(ctx, diff.Unassigned, false)

	u.cache = diff.Snapshot()

	u.publish(ctx, diff)

	res.Success = true
	res.LiveCount = len(diff.Live)
	res.NewCount = len(diff.New)
	res.KnownCount = len(diff.Known)
	res.ResolvedCount = len(diff.Resolved)
	res.Geocoded = len(coords)
	res.Duration = u.clock.Since(start)

	u.metrics.PollCycles.WithLabelValues("success").Inc()
	u.metrics.PollDuration.Observe(res.Duration.Seconds())
	u.metrics.LiveIncidents.Set(float64(len(u.cache)))
	u.recordStatus(res)
	u.ready.Store(true)

	log.WithFields(logrus.Fields{
		"failed_incidents": res.Incidents.Failed,
		"failed_units":     res.Assigned.Failed + res.Persisted.Failed + res.Unassigned.Failed,
		"duration_seconds": res.Duration.Seconds(),
	}).Info("Incidents updated")
	return res, nil
}

// seedCache заполняет снимок неразрешенными инцидентами из хранилища
func (u *Updater) seedCache(ctx context.Context) {
	u.running.Lock()
	defer u.running.Unlock()

	log := u.logger.WithFields(logrus.Fields{
		"service": "updater",
		"method":  "seedCache",
	})
	active, err := u.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Warn("Warm start failed, starting with an empty snapshot")
		return
	}

	cache := make(map[int64]models.LiveIncident, len(active))
	for _, incident := range active {
		cache[incident.Number] = incident
	}
	u.cache = cache
	u.statusMu.Lock()
	u.status.CachedIncidents = len(cache)
	u.statusMu.Unlock()
	log.WithField("incidents", len(cache)).Info("Snapshot seeded from store")
}

func (u *Updater) publish(ctx context.Context, diff DiffResult) {
	if u.publisher == nil {
		return
	}
	events := changeEvents(diff, u.clock.Now().UTC())
	if len(events) == 0 {
		return
	}
	if err := u.publisher.Publish(ctx, events); err != nil {
		u.logger.WithFields(logrus.Fields{
			"service": "updater",
			"events":  len(events),
		}).WithError(err).Warn("Failed to publish change events")
		u.metrics.EventsPublished.WithLabelValues("error").Add(float64(len(events)))
		return
	}
	u.metrics.EventsPublished.WithLabelValues("success").Add(float64(len(events)))
}

func (u *Updater) observeDiff(diff DiffResult) {
	u.metrics.DiffIncidents.WithLabelValues("new").Add(float64(len(diff.New)))
	u.metrics.DiffIncidents.WithLabelValues("known").Add(float64(len(diff.Known)))
	u.metrics.DiffIncidents.WithLabelValues("resolved").Add(float64(len(diff.Resolved)))
	u.metrics.DiffUnits.WithLabelValues("assigned").Add(float64(countUnits(diff.NewlyAssigned)))
	u.metrics.DiffUnits.WithLabelValues("persisted").Add(float64(countUnits(diff.Persisted)))
	u.metrics.DiffUnits.WithLabelValues("unassigned").Add(float64(countUnits(diff.Unassigned)))
}

func (u *Updater) recordStatus(res models.CycleResult) {
	u.statusMu.Lock()
	defer u.statusMu.Unlock()

	attempt := res.StartedAt
	u.status.LastAttempt = &attempt
	if res.Success {
		success := res.StartedAt
		u.status.LastSuccess = &success
		u.status.CachedIncidents = len(u.cache)
	}
	u.status.LastCycle = &res
}

// Status возвращает копию состояния планировщика
func (u *Updater) Status() models.FeedStatus {
	u.statusMu.RLock()
	defer u.statusMu.RUnlock()
	return u.status
}

// CheckReadiness возвращает nil после первого успешного цикла
func (u *Updater) CheckReadiness(_ context.Context) error {
	if !u.ready.Load() {
		return ErrNotReady
	}
	return nil
}

func countUnits(byIncident map[int64][]models.LiveUnit) int {
	n := 0
	for _, units := range byIncident {
		n += len(units)
	}
	return n
}
