package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dispatch_feed"

// Metrics - счетчики и гистограммы цикла сверки
type Metrics struct {
	PollCycles    *prometheus.CounterVec // outcome={success,fetch_error,skipped}
	PollDuration  prometheus.Histogram
	FetchDuration prometheus.Histogram
	LiveIncidents prometheus.Gauge

	DiffIncidents       *prometheus.CounterVec // kind={new,known,resolved}
	DiffUnits           *prometheus.CounterVec // kind={assigned,persisted,unassigned}
	PersistenceFailures *prometheus.CounterVec // entity={incident,unit}

	StaleResolved *prometheus.CounterVec // entity={incident,unit}

	GeocodeRequests *prometheus.CounterVec // outcome={success,unavailable,error,skipped}
	GeocodeCache    *prometheus.CounterVec // result={hit,miss,error}

	EventsPublished   *prometheus.CounterVec // outcome={success,error}
	WebhookDeliveries *prometheus.CounterVec // outcome={delivered,failed,skipped,invalid}
}

// NewMetrics создает метрики и регистрирует их в регистре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы тесты
// могли вызывать конструктор многократно
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PollCycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poll_cycles_total",
			Help:      "Feed poll cycles by outcome.",
		}, []string{"outcome"}),
		PollDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "poll_cycle_duration_seconds",
			Help:      "Duration of a complete fetch-diff-persist cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of the upstream feed request.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
		LiveIncidents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_incidents",
			Help:      "Incidents present in the last successful snapshot.",
		}),
		DiffIncidents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diff_incidents_total",
			Help:      "Incidents classified by the snapshot differ.",
		}, []string{"kind"}),
		DiffUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diff_units_total",
			Help:      "Unit assignment deltas classified by the snapshot differ.",
		}, []string{"kind"}),
		PersistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Contained single-entity write failures.",
		}, []string{"entity"}),
		StaleResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_resolved_total",
			Help:      "Rows resolved or removed by the staleness resolver.",
		}, []string{"entity"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding lookups for new incidents by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Change events handed to the configured sink.",
		}, []string{"outcome"}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Change event webhook deliveries by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.PollCycles,
		m.PollDuration,
		m.FetchDuration,
		m.LiveIncidents,
		m.DiffIncidents,
		m.DiffUnits,
		m.PersistenceFailures,
		m.StaleResolved,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.EventsPublished,
		m.WebhookDeliveries,
	}
}
