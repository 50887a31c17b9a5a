package progression

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ignacioLiotti/gymtracker/internal/cache"
	"github.com/ignacioLiotti/gymtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=progression_test

type recorder interface {
	SessionsRebuilt(sessions int, took time.Duration)
	RecommendationServed(decision string, workingSets int)
	RecommendationUnavailable(reason string)
	CacheHit()
}

const (
	reasonNotFound = "not_found"
	reasonNoSets   = "no_sets"
)

type Option func(e *Engine)

// WithRecorder reports rebuilds and recommendation outcomes to r.
func WithRecorder(r recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithCache memoizes recommendations per exercise until the next Rebuild.
func WithCache(c cache.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// Engine owns the sessions derived from the last exercise snapshot and the
// progression config. Callers push new snapshots with Rebuild.
type Engine struct {
	mu       sync.RWMutex
	sessions []WorkoutSession
	byID     map[string]int
	config   Config

	recorder recorder
	cache    cache.Cache
}

func NewEngine(exercises []ExerciseRef, override ConfigOverride, opts ...Option) (*Engine, error) {
	cfg := DefaultConfig().Merge(override)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid progression config: %w", err)
	}

	e := &Engine{
		config:   cfg,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.Rebuild(exercises)
	return e, nil
}

// Rebuild replaces all sessions with ones derived from exercises.
// There is no incremental update, every call recomputes everything.
func (e *Engine) Rebuild(exercises []ExerciseRef) {
	start := time.Now()

	sessions := BuildSessions(exercises)
	byID := make(map[string]int, len(sessions))
	for i, s := range sessions {
		// first one wins for duplicated ids
		if _, ok := byID[s.ExerciseID]; !ok {
			byID[s.ExerciseID] = i
		}
	}

	e.mu.Lock()
	e.sessions = sessions
	e.byID = byID
	if e.cache != nil {
		e.cache.Clear()
	}
	e.mu.Unlock()

	took := time.Since(start)
	e.recorder.SessionsRebuilt(len(sessions), took)
	log.Debugf("rebuilt %d workout sessions in %s", len(sessions), took)
}

func (e *Engine) Config() Config {
	return e.config
}

// Sessions returns a copy of all derived sessions in input order.
func (e *Engine) Sessions() []WorkoutSession {
	e.mu.RLock()
	defer e.mu.RUnlock()

	sessions := make([]WorkoutSession, len(e.sessions))
	for i, s := range e.sessions {
		sessions[i] = s.clone()
	}
	return sessions
}

func (e *Engine) Session(exerciseID string) (WorkoutSession, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	idx, ok := e.byID[exerciseID]
	if !ok {
		return WorkoutSession{}, false
	}
	return e.sessions[idx].clone(), true
}

// RecommendedWorkout returns the next session for the exercise, or false
// when there is nothing to recommend (unknown exercise or no logged sets).
func (e *Engine) RecommendedWorkout(ctx context.Context, exerciseID string) (WorkoutSession, bool) {
	rec, ok := e.Recommendation(ctx, exerciseID)
	if !ok {
		return WorkoutSession{}, false
	}
	return rec.Session, true
}

// Recommendation is RecommendedWorkout including the numbers the
// prescription was derived from.
func (e *Engine) Recommendation(ctx context.Context, exerciseID string) (Recommendation, bool) {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.progression.recommendation")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	e.mu.RLock()
	defer e.mu.RUnlock()

	if rec, found := e.cachedRecommendation(exerciseID); found {
		span.SetAttributes(attribute.Bool("cached", true))
		return rec, true
	}

	rec, err := e.calculateNextSession(exerciseID)
	if err != nil {
		if errors.Is(err, ErrNoSets) {
			log.Debugf("no recommendation for exercise %s: %s", exerciseID, err)
			e.recorder.RecommendationUnavailable(reasonNoSets)
		} else {
			log.Warnf("calculate next session for exercise %s: %s", exerciseID, err)
			e.recorder.RecommendationUnavailable(reasonNotFound)
		}
		return Recommendation{}, false
	}

	span.SetAttributes(attribute.String("decision", rec.Decision.String()))
	e.recorder.RecommendationServed(rec.Decision.String(), rec.WorkingSets)
	e.cacheRecommendation(exerciseID, rec)
	return rec, true
}

// calculateNextSession must be called with e.mu held.
func (e *Engine) calculateNextSession(exerciseID string) (Recommendation, error) {
	idx, ok := e.byID[exerciseID]
	if !ok {
		return Recommendation{}, fmt.Errorf("%w: %s", ErrSessionNotFound, exerciseID)
	}

	rec, err := Recommend(e.sessions[idx], e.config)
	if err != nil {
		return Recommendation{}, fmt.Errorf("recommend %s: %w", exerciseID, err)
	}
	return rec, nil
}

func (e *Engine) cachedRecommendation(exerciseID string) (Recommendation, bool) {
	if e.cache == nil {
		return Recommendation{}, false
	}

	recBytes, found := e.cache.Get(exerciseID)
	if !found {
		return Recommendation{}, false
	}

	var rec Recommendation
	if err := json.Unmarshal(recBytes, &rec); err != nil {
		log.Errorf("unmarshal cached recommendation for exercise %s: %s", exerciseID, err)
		return Recommendation{}, false
	}

	e.recorder.CacheHit()
	return rec, true
}

func (e *Engine) cacheRecommendation(exerciseID string, rec Recommendation) {
	if e.cache == nil {
		return
	}

	recBytes, err := json.Marshal(rec)
	if err != nil {
		log.Errorf("marshal recommendation for exercise %s: %s", exerciseID, err)
		return
	}
	if err := e.cache.Set(exerciseID, recBytes); err != nil {
		if errors.Is(err, cache.ErrEntryTooLarge) {
			log.Debugf("recommendation for exercise %s not cached: %s", exerciseID, err)
			return
		}
		log.Errorf("cache recommendation for exercise %s: %s", exerciseID, err)
	}
}

type nopRecorder struct{}

func (nopRecorder) SessionsRebuilt(int, time.Duration) {}
func (nopRecorder) RecommendationServed(string, int) {}
func (nopRecorder) RecommendationUnavailable(string) {}
func (nopRecorder) CacheHit() {}
