package qsim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ErrShotCount is returned when a non-positive number of shots is requested.
var ErrShotCount = errors.New("shot count must be positive")

// Sampler draws measurement shots from a probability distribution using an
// explicit seeded source, so identical seeds reproduce identical frequency
// tables. Process-wide random state is never touched.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler seeded with the given value.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Counts draws shots independent samples from the categorical distribution
// over basis states and tabulates them as canonical bitstring → count. The
// counts always sum exactly to shots.
//
// The distribution must have a power-of-two length and sum to 1 within
// NormTolerance; anything else is rejected with ErrNotNormalized.
func (sp *Sampler) Counts(dist []float64, shots int) (map[string]int, error) {
	if shots < 1 {
		return nil, fmt.Errorf("%w: %d", ErrShotCount, shots)
	}
	qubits := bitsFor(len(dist))
	if qubits == 0 {
		return nil, fmt.Errorf("%w: length %d is not a power of two", ErrNotNormalized, len(dist))
	}

	// Cumulative distribution for inverse-transform sampling.
	cum := make([]float64, len(dist))
	total := 0.0
	for i, p := range dist {
		if p < 0 {
			return nil, fmt.Errorf("%w: negative probability at state %d", ErrNotNormalized, i)
		}
		total += p
		cum[i] = total
	}
	if math.Abs(total-1) > NormTolerance {
		return nil, fmt.Errorf("%w: total probability %.12f", ErrNotNormalized, total)
	}

	counts := make(map[string]int)
	for i := 0; i < shots; i++ {
		u := sp.rng.Float64() * total
		state := sort.Search(len(cum), func(i int) bool { return cum[i] > u })
		if state == len(cum) {
			state = len(cum) - 1
		}
		counts[FormatBasisState(state, qubits)]++
	}
	return counts, nil
}

// bitsFor returns n for a slice of length 2^n, or 0 if the length is not a
// power of two greater than 1.
func bitsFor(length int) int {
	if length < 2 || length&(length-1) != 0 {
		return 0
	}
	n := 0
	for length > 1 {
		length >>= 1
		n++
	}
	return n
}
