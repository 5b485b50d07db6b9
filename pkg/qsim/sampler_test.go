package qsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformDist(states int) []float64 {
	dist := make([]float64, states)
	for i := range dist {
		dist[i] = 1.0 / float64(states)
	}
	return dist
}

func TestSamplerCountsSumToShots(t *testing.T) {
	counts, err := NewSampler(7).Counts(uniformDist(16), 1000)
	require.NoError(t, err)

	total := 0
	for bits, c := range counts {
		assert.Len(t, bits, 4, "keys are fixed-width bitstrings")
		assert.Positive(t, c)
		total += c
	}
	assert.Equal(t, 1000, total)
}

func TestSamplerDeterminism(t *testing.T) {
	dist := uniformDist(16)

	first, err := NewSampler(42).Counts(dist, 500)
	require.NoError(t, err)
	second, err := NewSampler(42).Counts(dist, 500)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed, same frequency table")

	third, err := NewSampler(43).Counts(dist, 500)
	require.NoError(t, err)
	assert.NotEqual(t, first, third, "different seed should shuffle counts")
}

func TestSamplerConcentratedDistribution(t *testing.T) {
	dist := make([]float64, 4)
	dist[2] = 1.0

	counts, err := NewSampler(1).Counts(dist, 100)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"01": 100}, counts)
}

func TestSamplerRejectsBadInput(t *testing.T) {
	t.Run("non-positive shots", func(t *testing.T) {
		_, err := NewSampler(1).Counts(uniformDist(4), 0)
		assert.ErrorIs(t, err, ErrShotCount)
	})

	t.Run("unnormalized distribution", func(t *testing.T) {
		dist := uniformDist(4)
		dist[0] += 0.01
		_, err := NewSampler(1).Counts(dist, 10)
		assert.ErrorIs(t, err, ErrNotNormalized)
	})

	t.Run("negative probability", func(t *testing.T) {
		dist := []float64{0.5, 0.7, -0.2, 0.0}
		_, err := NewSampler(1).Counts(dist, 10)
		assert.ErrorIs(t, err, ErrNotNormalized)
	})

	t.Run("length not a power of two", func(t *testing.T) {
		_, err := NewSampler(1).Counts([]float64{0.5, 0.25, 0.25}, 10)
		assert.ErrorIs(t, err, ErrNotNormalized)
	})
}
