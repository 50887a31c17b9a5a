package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ignacioLiotti/gymtracker/internal/gymstats/progression"
)

type Config struct {
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// 0 disables the recommendation cache
	RecommendationCacheSizeMB int `toml:"recommendation_cache_size_mb"`
	// metrics
	MetricsNamespace string `toml:"metrics_namespace"`
	MetricsTextfile  string `toml:"metrics_textfile"`

	Progression progression.ConfigOverride `toml:"progression"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config of env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if cfg.MetricsNamespace == "" {
		cfg.MetricsNamespace = "gymtracker"
	}
	return cfg, nil
}
