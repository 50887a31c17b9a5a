package progression

import (
	"errors"
	"math"
)

var (
	ErrSessionNotFound = errors.New("exercise session not found")
	ErrNoSets          = errors.New("session has no logged sets")
)

// warmupRatio: a first set below this share of the mean reps of the
// remaining sets is treated as a warm-up and ignored.
const warmupRatio = 0.7

// Decision is the branch double progression took for a session.
type Decision string

const (
	// DecisionDeload means reps fell below the range, weight goes down.
	DecisionDeload Decision = "deload"
	// DecisionProgress means reps went above the range, weight goes up.
	DecisionProgress Decision = "progress"
	// DecisionHold keeps the weight and adds a rep.
	DecisionHold Decision = "hold"
)

func (d Decision) String() string {
	return string(d)
}

// Recommendation is the next session prescription together with the
// numbers it was derived from.
type Recommendation struct {
	Session         WorkoutSession `json:"session"`
	Decision        Decision       `json:"decision"`
	WorkingWeight   float64        `json:"workingWeight"`
	WorkingSets     int            `json:"workingSets"`
	MeanReps        float64        `json:"meanReps"`
	MaxRepsAchieved int            `json:"maxRepsAchieved"`
	WarmupDropped   bool           `json:"warmupDropped"`
}

// Recommend computes the next session for the given history using
// double progression. The prescription repeats the same reps and weight
// across as many sets as there were working sets.
func Recommend(session WorkoutSession, cfg Config) (Recommendation, error) {
	if len(session.Sets) == 0 {
		return Recommendation{}, ErrNoSets
	}

	validSets, warmupDropped := dropWarmupSet(session.Sets)

	workingWeight := mode(weightsOf(validSets))
	workingSets := filterByWeight(validSets, workingWeight)

	reps := repsOf(workingSets)
	workoutMean := mean(reps)
	maxRepsAchieved := maxOf(reps)

	var (
		decision   Decision
		newWeight  float64
		targetReps int
	)
	switch {
	case workoutMean < float64(cfg.MinReps):
		decision = DecisionDeload
		newWeight = math.Max(0, workingWeight-cfg.WeightIncrement)
		targetReps = nextReps(maxRepsAchieved, cfg.MaxReps)
	case workoutMean > float64(cfg.MaxReps):
		decision = DecisionProgress
		newWeight = workingWeight + cfg.WeightIncrement
		targetReps = cfg.MinReps
	default:
		decision = DecisionHold
		newWeight = workingWeight
		targetReps = nextReps(maxRepsAchieved, cfg.MaxReps)
	}

	next := WorkoutSession{
		ExerciseID: session.ExerciseID,
		Sets:       make([]WorkoutSet, len(workingSets)),
	}
	for i := range next.Sets {
		next.Sets[i] = WorkoutSet{
			Reps:   targetReps,
			Weight: newWeight,
		}
	}

	return Recommendation{
		Session:         next,
		Decision:        decision,
		WorkingWeight:   workingWeight,
		WorkingSets:     len(workingSets),
		MeanReps:        workoutMean,
		MaxRepsAchieved: maxRepsAchieved,
		WarmupDropped:   warmupDropped,
	}, nil
}

// dropWarmupSet removes the first set when it looks like a warm-up.
// Needs at least two sets, otherwise there is nothing to compare against.
func dropWarmupSet(sets []WorkoutSet) ([]WorkoutSet, bool) {
	if len(sets) < 2 {
		return sets, false
	}
	if float64(sets[0].Reps) < warmupRatio*mean(repsOf(sets[1:])) {
		return sets[1:], true
	}
	return sets, false
}

func filterByWeight(sets []WorkoutSet, weight float64) []WorkoutSet {
	filtered := make([]WorkoutSet, 0, len(sets))
	for _, s := range sets {
		if s.Weight == weight {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
