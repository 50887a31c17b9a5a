package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignacioLiotti/gymtracker/internal/config"
	"github.com/ignacioLiotti/gymtracker/internal/gymstats/progression"
)

const testConfig = `
[development]
log_level = "debug"
log_to_stdout = true
recommendation_cache_size_mb = 1
metrics_textfile = "/tmp/gymtracker.prom"

[development.progression]
min_reps = 8
weight_increment = 1.25

[production]
environment = "prod"
log_level = "info"
logs_path = "/var/log/gymtracker/progression"
log_format_json = true
sentry_enabled = true
metrics_namespace = "gym"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	path := writeConfig(t, testConfig)

	cfg, err := config.Load("dev", path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Empty(t, cfg.LogsPath)
	assert.Equal(t, 1, cfg.RecommendationCacheSizeMB)
	assert.Equal(t, "gymtracker", cfg.MetricsNamespace)
	assert.Equal(t, "/tmp/gymtracker.prom", cfg.MetricsTextfile)

	require.NotNil(t, cfg.Progression.MinReps)
	assert.Equal(t, 8, *cfg.Progression.MinReps)
	assert.Nil(t, cfg.Progression.MaxReps)
	require.NotNil(t, cfg.Progression.WeightIncrement)
	assert.Equal(t, 1.25, *cfg.Progression.WeightIncrement)

	assert.Equal(t, progression.Config{
		MinReps:         8,
		MaxReps:         progression.DefaultMaxReps,
		WeightIncrement: 1.25,
	}, progression.DefaultConfig().Merge(cfg.Progression))
}

func TestLoad_Production(t *testing.T) {
	path := writeConfig(t, testConfig)

	cfg, err := config.Load("Production", path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/var/log/gymtracker/progression", cfg.LogsPath)
	assert.True(t, cfg.LogFormatJSON)
	assert.True(t, cfg.SentryEnabled)
	assert.Zero(t, cfg.RecommendationCacheSizeMB)
	assert.Equal(t, "gym", cfg.MetricsNamespace)
	assert.Equal(t, progression.ConfigOverride{}, cfg.Progression)
}

func TestLoad_Errors(t *testing.T) {
	path := writeConfig(t, testConfig)

	cfg, err := config.Load("staging", path)
	assert.Nil(t, cfg)
	assert.EqualError(t, err, "unknown env: staging")

	cfg, err = config.Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Nil(t, cfg)
	assert.Error(t, err)

	cfg, err = config.Load("dev", writeConfig(t, "[development\nlog_level = 1"))
	assert.Nil(t, cfg)
	assert.Error(t, err)

	cfg, err = config.Load("prod", writeConfig(t, "[development]\nlog_level = \"debug\"\n"))
	assert.Nil(t, cfg)
	assert.EqualError(t, err, "no config for env: prod")
}

func TestToml_Get(t *testing.T) {
	dev := &config.Config{LogLevel: "debug"}
	prod := &config.Config{LogLevel: "info"}
	tomlCfg := &config.Toml{Development: dev, Production: prod}

	for _, env := range []string{"dev", "development", "DEV"} {
		cfg, err := tomlCfg.Get(env)
		require.NoError(t, err)
		assert.Same(t, dev, cfg)
	}
	for _, env := range []string{"prod", "production", "Prod"} {
		cfg, err := tomlCfg.Get(env)
		require.NoError(t, err)
		assert.Same(t, prod, cfg)
	}
}
