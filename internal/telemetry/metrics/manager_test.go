package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignacioLiotti/gymtracker/internal/telemetry/metrics"
)

func TestManager_SessionsRebuilt(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()

	m.SessionsRebuilt(3, 2*time.Millisecond)
	m.SessionsRebuilt(5, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterRebuilds))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.GaugeSessions))

	histCount, err := testutil.GatherAndCount(reg, "gymtracker_test_progression_rebuild_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, histCount)
}

func TestManager_Recommendations(t *testing.T) {
	m := metrics.NewTestManager()

	m.RecommendationServed("hold", 3)
	m.RecommendationServed("hold", 2)
	m.RecommendationServed("deload", 1)
	m.RecommendationUnavailable("not_found")
	m.CacheHit()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterRecommendations.WithLabelValues("hold")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterRecommendations.WithLabelValues("deload")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CounterRecommendations.WithLabelValues("progress")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterUnavailable.WithLabelValues("not_found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterCacheHits))
}

func TestWriteTextfile(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()
	m.RecommendationServed("progress", 4)

	path := filepath.Join(t.TempDir(), "progression.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `gymtracker_test_progression_recommendations{decision="progress"} 1`)
}
