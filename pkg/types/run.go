package types

import (
	"errors"
	"time"
)

// Run validation errors.
var (
	ErrRunRuleEmpty     = errors.New("run rule must not be empty")
	ErrRunIterations    = errors.New("run iteration count must be non-negative")
	ErrRunShots         = errors.New("run shot count must be positive")
	ErrRunCountMismatch = errors.New("run outcome counts must sum to the shot count")
)

// Run records one completed Grover search: its parameters and the sampled
// frequency table. Runs are immutable once saved.
type Run struct {
	RunID      string    // UUID v7, generated on save.
	Rule       string    // Rule name the oracle was compiled from.
	Iterations int       // Grover iterations applied.
	Shots      int       // Measurement shots drawn.
	Seed       int64     // Sampler seed, for reproduction.
	CreatedAt  time.Time // Timestamp of the run.
	Outcomes   []Outcome // Frequency table, one entry per observed bitstring.
}

// Outcome is one row of a run's frequency table.
type Outcome struct {
	Bitstring   string  // Canonical fixed-width bitstring, qubit 0 first.
	Count       int     // Shots that measured this bitstring.
	Probability float64 // Exact probability from the final state vector.
	Valid       bool    // Whether the bitstring satisfies the run's rule.
}

// Validate checks that the run is internally consistent: non-empty rule,
// sane parameters, and outcome counts summing exactly to the shot count.
func (r *Run) Validate() error {
	if r.Rule == "" {
		return ErrRunRuleEmpty
	}
	if r.Iterations < 0 {
		return ErrRunIterations
	}
	if r.Shots < 1 {
		return ErrRunShots
	}
	total := 0
	for _, o := range r.Outcomes {
		total += o.Count
	}
	if total != r.Shots {
		return ErrRunCountMismatch
	}
	return nil
}

// ValidShots returns the number of shots that landed on rule-satisfying
// bitstrings.
func (r *Run) ValidShots() int {
	total := 0
	for _, o := range r.Outcomes {
		if o.Valid {
			total += o.Count
		}
	}
	return total
}
