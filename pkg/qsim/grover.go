package qsim

import (
	"errors"
	"fmt"
)

// Grover orchestration errors.
var (
	// ErrIterationCount is returned for a negative Grover iteration count.
	ErrIterationCount = errors.New("iteration count must be non-negative")

	// ErrWidthMismatch is returned when the diffuser and oracle disagree on
	// the data-qubit count.
	ErrWidthMismatch = errors.New("diffuser width does not match oracle data qubits")
)

// SearchResult holds the outcome of one Grover run: the final register and
// the probability distribution over the data qubits.
type SearchResult struct {
	// State is the full final register, ancillas included.
	State *StateVector

	// Distribution maps each data basis state to its probability, ancillas
	// marginalized out. Length is 2^dataQubits.
	Distribution []float64

	// Iterations is the number of (oracle, diffuser) rounds applied.
	Iterations int
}

// Search runs Grover's algorithm: a fresh register in uniform superposition
// over the data qubits, then (oracle, diffuser) applied exactly k times.
//
// Each call constructs its own register; amplified state from a previous run
// is never reused, so sweeping several iteration counts means re-preparing
// the superposition from scratch every time. The iteration count is a plain
// parameter: callers wanting the optimal ⌊π/4·√(N/M)⌋ must derive it from
// their known marked-state count themselves.
func Search(oracle *Oracle, diffuser *Diffuser, k int) (*SearchResult, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIterationCount, k)
	}
	if diffuser.dataQubits != oracle.DataQubits() {
		return nil, fmt.Errorf("%w: diffuser %d, oracle %d",
			ErrWidthMismatch, diffuser.dataQubits, oracle.DataQubits())
	}

	s, err := NewStateVector(oracle.TotalQubits())
	if err != nil {
		return nil, err
	}
	for q := 0; q < oracle.DataQubits(); q++ {
		if err := s.ApplyH(q); err != nil {
			return nil, err
		}
	}

	for i := 0; i < k; i++ {
		if err := oracle.Apply(s); err != nil {
			return nil, fmt.Errorf("iteration %d oracle: %w", i, err)
		}
		if err := diffuser.Apply(s); err != nil {
			return nil, fmt.Errorf("iteration %d diffuser: %w", i, err)
		}
		if err := s.CheckNorm(); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
	}

	return &SearchResult{
		State:        s,
		Distribution: dataDistribution(s, oracle.DataQubits()),
		Iterations:   k,
	}, nil
}

// dataDistribution marginalizes the register probabilities down to the data
// qubits. With clean ancillas this just relocates probability mass from the
// ancilla-zero block, but summing over all ancilla values keeps the result
// correct regardless.
func dataDistribution(s *StateVector, dataQubits int) []float64 {
	dist := make([]float64, 1<<dataQubits)
	mask := 1<<dataQubits - 1
	for i, p := range s.Probabilities() {
		dist[i&mask] += p
	}
	return dist
}
