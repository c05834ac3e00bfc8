package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffBelgum/statistical/internal/render"
	"github.com/JeffBelgum/statistical/internal/summary"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	s := summary.Compute([]float64{0, 0.25, 0.25, 1.25, 1.5, 1.75, 2.75, 3.25}, summary.Options{})
	formatter := render.NewFormatter(render.Options{Precision: 4})

	out := formatter.FormatSummary(s)

	assert.Contains(t, out, "Statistic")
	assert.Contains(t, out, "Mean")
	assert.Contains(t, out, "1.3750")
	assert.Contains(t, out, "Standard deviation")
	assert.Contains(t, out, "1.1952")
	assert.Contains(t, out, "Skewness")
	assert.Contains(t, out, "Values")

	// The zero element leaves the harmonic mean unavailable; its row must
	// not appear.
	assert.NotContains(t, out, "Harmonic mean")
}

func TestFormatSummaryOmitsUnsupportedRows(t *testing.T) {
	t.Parallel()

	s := summary.Compute([]float64{4.5}, summary.Options{})
	formatter := render.NewFormatter(render.Options{Precision: 2})

	out := formatter.FormatSummary(s)

	assert.Contains(t, out, "Population variance")
	assert.Contains(t, out, "4.50")
	assert.NotContains(t, out, "Variance ")
	assert.NotContains(t, out, "Skewness")
	assert.NotContains(t, out, "Kurtosis")
}

func TestFormatSummaryPrecision(t *testing.T) {
	t.Parallel()

	s := summary.Compute([]float64{1, 2}, summary.Options{})

	coarse := render.NewFormatter(render.Options{Precision: 1}).FormatSummary(s)
	assert.Contains(t, coarse, "1.5")
	assert.NotContains(t, coarse, "1.5000")

	fine := render.NewFormatter(render.Options{Precision: 4}).FormatSummary(s)
	assert.Contains(t, fine, "1.5000")
}

func TestFormatScores(t *testing.T) {
	t.Parallel()

	values := []float64{10, 20, 30}
	scores := []float64{-2.5, 0, 2.5}

	formatter := render.NewFormatter(render.Options{Precision: 2})
	out := formatter.FormatScores(values, scores)

	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "-2.50")
	assert.Contains(t, out, "0.00")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "Values")
}

func TestFormatScoresWithColorKeepsValues(t *testing.T) {
	t.Parallel()

	values := []float64{10, 30}
	scores := []float64{-3, 3}

	formatter := render.NewFormatter(render.Options{Precision: 2, Color: true})
	out := formatter.FormatScores(values, scores)

	// Highlighting may wrap the text in escape codes but never replaces
	// it.
	require.Contains(t, out, "-3.00")
	require.Contains(t, out, "3.00")
}
