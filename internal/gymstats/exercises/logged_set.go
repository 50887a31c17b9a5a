package exercises

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ignacioLiotti/gymtracker/internal/gymstats/progression"
)

// LoggedSet is a single set as it was recorded in the gym.
type LoggedSet struct {
	Repetitions int       `json:"repetitions"`
	Weight      float64   `json:"weight"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewExerciseRef builds the progression snapshot of an exercise from its
// logged sets. Only the sets of the most recent workout day (UTC) are used,
// ordered by timestamp.
func NewExerciseRef(id, name string, sets []LoggedSet) progression.ExerciseRef {
	lastWorkout := lastWorkoutSets(sets)

	reps := make([]string, len(lastWorkout))
	weights := make([]string, len(lastWorkout))
	for i, s := range lastWorkout {
		reps[i] = strconv.Itoa(s.Repetitions)
		weights[i] = strconv.FormatFloat(s.Weight, 'f', -1, 64)
	}

	return progression.ExerciseRef{
		ID:                id,
		Name:              name,
		LastWorkoutReps:   strings.Join(reps, ","),
		LastWorkoutWeight: strings.Join(weights, ","),
	}
}

func lastWorkoutSets(sets []LoggedSet) []LoggedSet {
	if len(sets) == 0 {
		return nil
	}

	day2sets := make(map[time.Time][]LoggedSet)
	var lastDay time.Time
	for i, s := range sets {
		day := s.Timestamp.UTC().Truncate(24 * time.Hour)
		day2sets[day] = append(day2sets[day], s)
		if i == 0 || day.After(lastDay) {
			lastDay = day
		}
	}

	lastWorkout := day2sets[lastDay]
	sort.SliceStable(lastWorkout, func(i, j int) bool {
		return lastWorkout[i].Timestamp.Before(lastWorkout[j].Timestamp)
	})
	return lastWorkout
}
