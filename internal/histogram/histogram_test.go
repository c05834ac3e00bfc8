package histogram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffBelgum/statistical/internal/histogram"
	"github.com/JeffBelgum/statistical/pkg/stats"
)

func TestSturgesBins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{
			name:     "empty",
			n:        0,
			expected: 1,
		},
		{
			name:     "single",
			n:        1,
			expected: 1,
		},
		{
			name:     "two",
			n:        2,
			expected: 2,
		},
		{
			name:     "eight",
			n:        8,
			expected: 4,
		},
		{
			name:     "hundred",
			n:        100,
			expected: 8,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, histogram.SturgesBins(tt.n))
		})
	}
}

func TestComputeFixedBins(t *testing.T) {
	t.Parallel()

	sample := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	hist, err := histogram.Compute(sample, 5)

	require.NoError(t, err)
	require.Len(t, hist.Bins, 5)

	for _, bin := range hist.Bins {
		assert.Equal(t, 2, bin.Count)
	}

	first := hist.Bins[0]
	assert.InDelta(t, 0.0, first.Lower, 1e-9)

	last := hist.Bins[len(hist.Bins)-1]
	assert.InDelta(t, 9.0, last.Upper, 1e-9, "last edge must sit on the sample maximum")
}

func TestComputeDefaultsToSturges(t *testing.T) {
	t.Parallel()

	sample := []float64{0, 0.25, 0.25, 1.25, 1.5, 1.75, 2.75, 3.25}

	hist, err := histogram.Compute(sample, 0)

	require.NoError(t, err)
	assert.Len(t, hist.Bins, histogram.SturgesBins(len(sample)))
}

func TestComputeCountsSumToSampleSize(t *testing.T) {
	t.Parallel()

	sample := []float64{-3.2, 0.1, 0.1, 4.7, 9.9, 2.2, 2.3, 7.4, -1.6}

	hist, err := histogram.Compute(sample, 4)
	require.NoError(t, err)

	total := 0
	for _, bin := range hist.Bins {
		total += bin.Count
	}

	assert.Equal(t, len(sample), total)
}

func TestComputeConstantSample(t *testing.T) {
	t.Parallel()

	hist, err := histogram.Compute([]float64{2.5, 2.5, 2.5}, 10)

	require.NoError(t, err)
	require.Len(t, hist.Bins, 1)
	assert.Equal(t, 3, hist.Bins[0].Count)
	assert.InDelta(t, 2.5, hist.Bins[0].Lower, 1e-9)
	assert.InDelta(t, 2.5, hist.Bins[0].Upper, 1e-9)
}

func TestComputeEmptySample(t *testing.T) {
	t.Parallel()

	_, err := histogram.Compute(nil, 5)

	require.ErrorIs(t, err, stats.ErrEmptySample)
}

func TestBinLabel(t *testing.T) {
	t.Parallel()

	bin := histogram.Bin{Lower: 0, Upper: 1.25}

	assert.Equal(t, "[0.00, 1.25)", bin.Label(2))
	assert.Equal(t, "[0.0, 1.2)", bin.Label(1))
}
