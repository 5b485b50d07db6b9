package qsim

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// NormTolerance is the maximum deviation from 1 the squared-magnitude sum of
// a register may show before it is treated as an internal invariant violation.
const NormTolerance = 1e-9

// Register and distribution errors.
var (
	// ErrQubitCount is returned when a register is requested with a
	// non-positive number of qubits.
	ErrQubitCount = errors.New("qubit count must be positive")

	// ErrQubitIndex is returned when a gate targets a qubit outside the
	// register.
	ErrQubitIndex = errors.New("qubit index out of range")

	// ErrNotNormalized is returned when squared amplitude magnitudes fail to
	// sum to 1 within NormTolerance. It indicates a gate-implementation bug,
	// not a user input error.
	ErrNotNormalized = errors.New("probability distribution not normalized")
)

// StateVector holds the complex amplitudes of an n-qubit register, indexed by
// basis state. A fresh register starts in the all-zero basis state.
type StateVector struct {
	amps   []complex128
	qubits int
}

// NewStateVector creates an n-qubit register initialized to |0...0⟩.
func NewStateVector(qubits int) (*StateVector, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("%w: %d", ErrQubitCount, qubits)
	}
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &StateVector{amps: amps, qubits: qubits}, nil
}

// Qubits returns the number of qubits in the register.
func (s *StateVector) Qubits() int {
	return s.qubits
}

// Dim returns the number of basis states, 2^n.
func (s *StateVector) Dim() int {
	return len(s.amps)
}

// Amplitude returns the complex amplitude of the given basis state.
func (s *StateVector) Amplitude(state int) complex128 {
	return s.amps[state]
}

// Clone returns an independent copy of the register.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &StateVector{amps: amps, qubits: s.qubits}
}

// Probabilities returns the squared amplitude magnitudes over all basis
// states. The returned slice is freshly allocated.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a * cmplx.Conj(a))
	}
	return probs
}

// Probability returns the squared amplitude magnitude of one basis state.
func (s *StateVector) Probability(state int) float64 {
	a := s.amps[state]
	return real(a * cmplx.Conj(a))
}

// MarginalProbability returns the probability of measuring qubit q as 0 and
// as 1, summed over all other qubits.
func (s *StateVector) MarginalProbability(q int) (p0, p1 float64, err error) {
	if q < 0 || q >= s.qubits {
		return 0, 0, fmt.Errorf("%w: qubit %d of %d", ErrQubitIndex, q, s.qubits)
	}
	bit := 1 << q
	for i, a := range s.amps {
		p := real(a * cmplx.Conj(a))
		if i&bit == 0 {
			p0 += p
		} else {
			p1 += p
		}
	}
	return p0, p1, nil
}

// CheckNorm verifies that total probability equals 1 within NormTolerance.
// A failure means a gate implementation broke unitarity.
func (s *StateVector) CheckNorm() error {
	total := 0.0
	for _, a := range s.amps {
		total += real(a * cmplx.Conj(a))
	}
	if math.Abs(total-1) > NormTolerance {
		return fmt.Errorf("%w: total probability %.12f", ErrNotNormalized, total)
	}
	return nil
}

// FormatBasisState renders a basis-state index as a canonical fixed-width
// bitstring with qubit 0 first. FormatBasisState(3, 4) == "1100".
func FormatBasisState(state, qubits int) string {
	var b strings.Builder
	b.Grow(qubits)
	for q := 0; q < qubits; q++ {
		if state>>q&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ParseBasisState is the inverse of FormatBasisState. It returns the basis
// index of a canonical bitstring, or an error for characters outside {0,1}.
func ParseBasisState(bits string) (int, error) {
	state := 0
	for q := 0; q < len(bits); q++ {
		switch bits[q] {
		case '1':
			state |= 1 << q
		case '0':
		default:
			return 0, fmt.Errorf("invalid bitstring %q", bits)
		}
	}
	return state, nil
}
