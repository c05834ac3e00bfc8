package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeffBelgum/statistical/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	// Test loading with no config file (should use defaults).
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	// Check default values.
	assert.Equal(t, config.FormatTable, cfg.Output.Format)
	assert.Equal(t, 6, cfg.Output.Precision)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 0, cfg.Plot.Bins)
	assert.Equal(t, config.ThemeDark, cfg.Plot.Theme)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	configContent := `
output:
  format: "json"
  precision: 3
  color: false

plot:
  bins: 12
  theme: "light"
`

	tmpDir := t.TempDir()

	tmpFile, err := os.CreateTemp(tmpDir, "test-config-*.yaml")
	require.NoError(t, err)

	_, writeErr := tmpFile.WriteString(configContent)
	require.NoError(t, writeErr)

	tmpFile.Close()

	// Load config from file.
	cfg, loadErr := config.LoadConfig(tmpFile.Name())
	require.NoError(t, loadErr)

	// Check custom values.
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, 12, cfg.Plot.Bins)
	assert.Equal(t, config.ThemeLight, cfg.Plot.Theme)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	// Set environment variables.
	t.Setenv("STATISTICAL_OUTPUT_FORMAT", "yaml")
	t.Setenv("STATISTICAL_OUTPUT_PRECISION", "2")
	t.Setenv("STATISTICAL_PLOT_THEME", "light")

	// Load config (should pick up environment variables).
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	// Check environment variable values.
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, config.ThemeLight, cfg.Plot.Theme)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "unknown_format",
			content:     "output:\n  format: \"csv\"\n",
			expectedErr: config.ErrInvalidFormat,
		},
		{
			name:        "negative_precision",
			content:     "output:\n  precision: -1\n",
			expectedErr: config.ErrInvalidPrecision,
		},
		{
			name:        "excessive_precision",
			content:     "output:\n  precision: 99\n",
			expectedErr: config.ErrInvalidPrecision,
		},
		{
			name:        "negative_bins",
			content:     "plot:\n  bins: -4\n",
			expectedErr: config.ErrInvalidBins,
		},
		{
			name:        "unknown_theme",
			content:     "plot:\n  theme: \"sepia\"\n",
			expectedErr: config.ErrInvalidTheme,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()

			tmpFile, err := os.CreateTemp(tmpDir, "test-invalid-*.yaml")
			require.NoError(t, err)

			_, writeErr := tmpFile.WriteString(tt.content)
			require.NoError(t, writeErr)

			tmpFile.Close()

			_, loadErr := config.LoadConfig(tmpFile.Name())
			require.ErrorIs(t, loadErr, tt.expectedErr)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig("/nonexistent/statistical.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
