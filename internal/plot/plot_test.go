package plot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffBelgum/statistical/internal/histogram"
	"github.com/JeffBelgum/statistical/internal/plot"
	"github.com/JeffBelgum/statistical/internal/summary"
)

// sampleFixture returns a sample plus its histogram and summary.
func sampleFixture(t *testing.T) (*histogram.Histogram, *summary.Summary) {
	t.Helper()

	sample := []float64{0, 0.25, 0.25, 1.25, 1.5, 1.75, 2.75, 3.25}

	hist, err := histogram.Compute(sample, 4)
	require.NoError(t, err)

	return hist, summary.Compute(sample, summary.Options{})
}

func TestRenderProducesStandalonePage(t *testing.T) {
	t.Parallel()

	hist, s := sampleFixture(t)

	var buf bytes.Buffer

	err := plot.Render(&buf, hist, s, plot.Config{
		Title:     "Sample distribution",
		Theme:     plot.ThemeDark,
		Precision: 2,
	})

	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Sample distribution")
	assert.Contains(t, out, "Count")
	assert.Contains(t, out, "[0.00, 0.81)", "first bin label")
	assert.Contains(t, out, "n=8")
}

func TestRenderThemes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		theme    plot.Theme
		expected string
	}{
		{
			name:     "dark_uses_chalk",
			theme:    plot.ThemeDark,
			expected: "chalk",
		},
		{
			name:     "light_uses_westeros",
			theme:    plot.ThemeLight,
			expected: "westeros",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hist, s := sampleFixture(t)

			var buf bytes.Buffer

			err := plot.Render(&buf, hist, s, plot.Config{
				Title:     "Distribution",
				Theme:     tt.theme,
				Precision: 2,
			})

			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestRenderSubtitleSkipsUnavailable(t *testing.T) {
	t.Parallel()

	sample := []float64{3.5}

	hist, err := histogram.Compute(sample, 0)
	require.NoError(t, err)

	var buf bytes.Buffer

	renderErr := plot.Render(&buf, hist, summary.Compute(sample, summary.Options{}), plot.Config{
		Title:     "Single point",
		Theme:     plot.ThemeLight,
		Precision: 2,
	})

	require.NoError(t, renderErr)

	out := buf.String()
	assert.Contains(t, out, "n=1")
	assert.Contains(t, out, "mean 3.50")
	assert.NotContains(t, out, "stdev")
}
