package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRun() *Run {
	return &Run{
		Rule:       "exactly-one-pair",
		Iterations: 2,
		Shots:      100,
		Seed:       42,
		Outcomes: []Outcome{
			{Bitstring: "1100", Count: 55, Probability: 0.47265625, Valid: true},
			{Bitstring: "0011", Count: 40, Probability: 0.47265625, Valid: true},
			{Bitstring: "0000", Count: 5, Probability: 0.00390625},
		},
	}
}

func TestRunValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Run)
		wantErr error
	}{
		{
			name:   "consistent run passes",
			mutate: func(*Run) {},
		},
		{
			name:    "empty rule rejected",
			mutate:  func(r *Run) { r.Rule = "" },
			wantErr: ErrRunRuleEmpty,
		},
		{
			name:    "negative iterations rejected",
			mutate:  func(r *Run) { r.Iterations = -1 },
			wantErr: ErrRunIterations,
		},
		{
			name:    "zero shots rejected",
			mutate:  func(r *Run) { r.Shots = 0 },
			wantErr: ErrRunShots,
		},
		{
			name:    "count mismatch rejected",
			mutate:  func(r *Run) { r.Outcomes[0].Count++ },
			wantErr: ErrRunCountMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := validRun()
			tt.mutate(run)
			err := run.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunValidShots(t *testing.T) {
	run := validRun()
	assert.Equal(t, 95, run.ValidShots())

	run.Outcomes = nil
	assert.Equal(t, 0, run.ValidShots())
}
