package progression

import (
	"fmt"

	"go.uber.org/multierr"
)

const (
	DefaultMinReps         = 10
	DefaultMaxReps         = 15
	DefaultWeightIncrement = 2.5
)

// Config is the rep range and weight step used by double progression.
type Config struct {
	MinReps         int     `json:"minReps"`
	MaxReps         int     `json:"maxReps"`
	WeightIncrement float64 `json:"weightIncrement"`
}

// ConfigOverride is a partial Config. Nil fields keep the default.
type ConfigOverride struct {
	MinReps         *int     `toml:"min_reps" json:"minReps,omitempty"`
	MaxReps         *int     `toml:"max_reps" json:"maxReps,omitempty"`
	WeightIncrement *float64 `toml:"weight_increment" json:"weightIncrement,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		MinReps:         DefaultMinReps,
		MaxReps:         DefaultMaxReps,
		WeightIncrement: DefaultWeightIncrement,
	}
}

// Merge returns c with every field set in o replaced (shallow merge).
func (c Config) Merge(o ConfigOverride) Config {
	if o.MinReps != nil {
		c.MinReps = *o.MinReps
	}
	if o.MaxReps != nil {
		c.MaxReps = *o.MaxReps
	}
	if o.WeightIncrement != nil {
		c.WeightIncrement = *o.WeightIncrement
	}
	return c
}

// Validate reports every violated constraint, not only the first one.
func (c Config) Validate() error {
	var err error
	if c.MinReps < 0 {
		err = multierr.Append(err, fmt.Errorf("min reps must not be negative, got %d", c.MinReps))
	}
	if c.MaxReps < c.MinReps {
		err = multierr.Append(err, fmt.Errorf("max reps (%d) must not be lower than min reps (%d)", c.MaxReps, c.MinReps))
	}
	if !(c.WeightIncrement > 0) {
		err = multierr.Append(err, fmt.Errorf("weight increment must be positive, got %v", c.WeightIncrement))
	}
	return err
}
