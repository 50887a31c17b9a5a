package progression

import (
	"regexp"
	"strconv"
	"strings"
)

// ExerciseRef is the exercise snapshot handed over by the exercise store.
// LastWorkoutReps and LastWorkoutWeight are comma joined and aligned by
// position: set i did LastWorkoutReps[i] reps at LastWorkoutWeight[i].
type ExerciseRef struct {
	ID                string `json:"id"`
	Name              string `json:"name,omitempty"`
	LastWorkoutReps   string `json:"lastWorkoutReps"`
	LastWorkoutWeight string `json:"lastWorkoutWeight"`
}

type WorkoutSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type WorkoutSession struct {
	ExerciseID string       `json:"exerciseId"`
	Sets       []WorkoutSet `json:"sets"`
}

func (s WorkoutSession) clone() WorkoutSession {
	sets := make([]WorkoutSet, len(s.Sets))
	copy(sets, s.Sets)
	return WorkoutSession{
		ExerciseID: s.ExerciseID,
		Sets:       sets,
	}
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// BuildSessions derives one session per exercise, in input order.
// Values that do not parse become 0, a missing weight for a set becomes 0.
// A session has one set per comma separated reps value, except when the
// reps string is blank: that exercise has no history and gets zero sets
// (not the single zero set a plain split would give).
func BuildSessions(exercises []ExerciseRef) []WorkoutSession {
	sessions := make([]WorkoutSession, 0, len(exercises))
	for _, ex := range exercises {
		sessions = append(sessions, buildSession(ex))
	}
	return sessions
}

func buildSession(ex ExerciseRef) WorkoutSession {
	session := WorkoutSession{
		ExerciseID: ex.ID,
		Sets:       []WorkoutSet{},
	}
	// nothing logged yet
	if strings.TrimSpace(ex.LastWorkoutReps) == "" {
		return session
	}

	repsParts := strings.Split(ex.LastWorkoutReps, ",")
	weightParts := strings.Split(ex.LastWorkoutWeight, ",")
	for i, reps := range repsParts {
		set := WorkoutSet{
			Reps: parseReps(reps),
		}
		if i < len(weightParts) {
			set.Weight = parseWeight(weightParts[i])
		}
		session.Sets = append(session.Sets, set)
	}
	return session
}

// parseReps reads the leading integer of s, so "10kg" is 10 and "x" is 0.
func parseReps(s string) int {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	reps, err := strconv.Atoi(m)
	if err != nil || reps < 0 {
		return 0
	}
	return reps
}

// parseWeight reads the leading decimal number of s.
func parseWeight(s string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	weight, err := strconv.ParseFloat(m, 64)
	if err != nil || weight < 0 {
		return 0
	}
	return weight
}
