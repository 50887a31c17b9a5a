package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRecommendations *prometheus.CounterVec
	CounterUnavailable     *prometheus.CounterVec
	CounterRebuilds        prometheus.Counter
	CounterCacheHits       prometheus.Counter

	// gauges
	GaugeSessions prometheus.Gauge

	// histograms
	HistRebuildDuration prometheus.Histogram
	HistWorkingSets     prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("gymtracker", "test_progression", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymtracker", "test_progression", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRecommendations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendations",
		Help:      "The total number of computed workout recommendations",
	}, []string{"decision"})
	counterUnavailable := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendations_unavailable",
		Help:      "The total number of recommendation queries answered with no recommendation",
	}, []string{"reason"})
	counterRebuilds := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "session_rebuilds",
		Help:      "The total number of full session rebuilds",
	})
	counterCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendation_cache_hits",
		Help:      "The total number of recommendations served from cache",
	})

	gaugeSessions := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions",
		Help:      "Number of workout sessions derived by the last rebuild",
	})

	histRebuildDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rebuild_duration_seconds",
		Help:      "Duration of a full session rebuild in seconds",
		Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
	})
	histWorkingSets := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "working_sets",
		Help:      "Number of working sets a recommendation was based on",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 15},
	})

	return &Manager{
		CounterRecommendations: counterRecommendations,
		CounterUnavailable:     counterUnavailable,
		CounterRebuilds:        counterRebuilds,
		CounterCacheHits:       counterCacheHits,
		GaugeSessions:          gaugeSessions,
		HistRebuildDuration:    histRebuildDuration,
		HistWorkingSets:        histWorkingSets,
	}
}

func (m *Manager) SessionsRebuilt(sessions int, took time.Duration) {
	m.CounterRebuilds.Inc()
	m.GaugeSessions.Set(float64(sessions))
	m.HistRebuildDuration.Observe(took.Seconds())
}

func (m *Manager) RecommendationServed(decision string, workingSets int) {
	m.CounterRecommendations.WithLabelValues(decision).Inc()
	m.HistWorkingSets.Observe(float64(workingSets))
}

func (m *Manager) RecommendationUnavailable(reason string) {
	m.CounterUnavailable.WithLabelValues(reason).Inc()
}

func (m *Manager) CacheHit() {
	m.CounterCacheHits.Inc()
}
