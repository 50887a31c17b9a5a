package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/ignacioLiotti/gymtracker/internal/cache"
	"github.com/ignacioLiotti/gymtracker/internal/config"
	"github.com/ignacioLiotti/gymtracker/internal/gymstats/exercises"
	"github.com/ignacioLiotti/gymtracker/internal/gymstats/progression"
	"github.com/ignacioLiotti/gymtracker/internal/logging"
	"github.com/ignacioLiotti/gymtracker/internal/telemetry/metrics"
)

type output struct {
	ExerciseID     string                      `json:"exerciseId"`
	Available      bool                        `json:"available"`
	Recommendation *progression.Recommendation `json:"recommendation,omitempty"`
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	snapshotPath := flag.String("exercises", "./exercises.json", "path for the exercises snapshot (JSON)")
	exerciseIDs := flag.String("exercise", "", "comma separated exercise ids to recommend for (empty for all)")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "progression",
	})
	defer sentry.Flush(2 * time.Second)

	if err := run(cfg, *snapshotPath, *exerciseIDs); err != nil {
		log.Errorf("progression: %s", err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(cfg *config.Config, snapshotPath, exerciseIDs string) error {
	snapshotFile, err := os.Open(snapshotPath)
	if err != nil {
		return fmt.Errorf("open exercises snapshot: %w", err)
	}
	defer snapshotFile.Close()

	refs, err := exercises.DecodeSnapshot(snapshotFile)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d exercises from %s", len(refs), snapshotPath)

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager(cfg.MetricsNamespace, "progression", promRegistry)

	opts := []progression.Option{
		progression.WithRecorder(metricsManager),
	}
	if cfg.RecommendationCacheSizeMB > 0 {
		recCache, err := cache.NewRecommendationCache(cfg.RecommendationCacheSizeMB)
		if err != nil {
			return err
		}
		opts = append(opts, progression.WithCache(recCache))
	} else {
		log.Debugln("recommendation cache disabled")
	}

	engine, err := progression.NewEngine(refs, cfg.Progression, opts...)
	if err != nil {
		return err
	}
	log.Debugf("progression config: %+v", engine.Config())

	ids := selectedExerciseIDs(engine, exerciseIDs)
	ctx := context.Background()
	results := make([]output, 0, len(ids))
	for _, id := range ids {
		out := output{ExerciseID: id}
		if rec, ok := engine.Recommendation(ctx, id); ok {
			out.Available = true
			out.Recommendation = &rec
		}
		results = append(results, out)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile, promRegistry); err != nil {
			return err
		}
		log.Debugf("metrics written to %s", cfg.MetricsTextfile)
	}

	return nil
}

func selectedExerciseIDs(engine *progression.Engine, exerciseIDs string) []string {
	if strings.TrimSpace(exerciseIDs) != "" {
		var ids []string
		for _, id := range strings.Split(exerciseIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		return ids
	}

	sessions := engine.Sessions()
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ExerciseID)
	}
	return ids
}
