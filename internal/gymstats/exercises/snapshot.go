package exercises

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ignacioLiotti/gymtracker/internal/gymstats/progression"
)

var ErrMissingExerciseID = errors.New("exercise id missing")

// snapshotExercise is one entry of an exported exercise snapshot. The last
// workout is given either as the joined strings, or as the raw logged sets.
type snapshotExercise struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	LastWorkoutReps   string      `json:"lastWorkoutReps"`
	LastWorkoutWeight string      `json:"lastWorkoutWeight"`
	Sets              []LoggedSet `json:"sets"`
}

// DecodeSnapshot reads a JSON array of exercises into progression refs,
// keeping their order.
func DecodeSnapshot(r io.Reader) ([]progression.ExerciseRef, error) {
	var snapshot []snapshotExercise
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode exercises snapshot: %w", err)
	}

	refs := make([]progression.ExerciseRef, 0, len(snapshot))
	for i, ex := range snapshot {
		if ex.ID == "" {
			return nil, fmt.Errorf("exercise at index %d: %w", i, ErrMissingExerciseID)
		}

		if len(ex.Sets) > 0 {
			refs = append(refs, NewExerciseRef(ex.ID, ex.Name, ex.Sets))
			continue
		}

		refs = append(refs, progression.ExerciseRef{
			ID:                ex.ID,
			Name:              ex.Name,
			LastWorkoutReps:   ex.LastWorkoutReps,
			LastWorkoutWeight: ex.LastWorkoutWeight,
		})
	}

	return refs, nil
}
