// Package commands implements CLI command handlers for statistical.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JeffBelgum/statistical/internal/config"
	"github.com/JeffBelgum/statistical/internal/dataset"
	"github.com/JeffBelgum/statistical/internal/render"
)

// Flag names and usage strings shared by the data commands.
const (
	quietFlag = "quiet"

	configFlag      = "config"
	configFlagShort = "c"
	configUsage     = "configuration file path"

	formatFlag  = "format"
	formatUsage = "output format: table, json, yaml"

	precisionFlag  = "precision"
	precisionUsage = "decimal places for rendered values"

	noColorFlag  = "no-color"
	noColorUsage = "disable colored table output"

	jsonIndent = "  "
)

// ErrUnknownFormat is returned when a resolved output format has no writer.
var ErrUnknownFormat = errors.New("unknown output format")

// sampleLoader reads a dataset from a path. Commands take it as a
// dependency so tests can substitute fixtures.
type sampleLoader func(path string) (*dataset.Dataset, error)

// outputFlags is the flag cluster shared by commands that render
// statistics: a config file path plus overrides for the output section.
type outputFlags struct {
	configPath string
	format     string
	precision  int
	noColor    bool
}

func (of *outputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVarP(&of.configPath, configFlag, configFlagShort, "", configUsage)
	flags.StringVar(&of.format, formatFlag, "", formatUsage)
	flags.IntVar(&of.precision, precisionFlag, 0, precisionUsage)
	flags.BoolVar(&of.noColor, noColorFlag, false, noColorUsage)
}

// resolve loads the configuration and overlays every flag the user set
// explicitly, then re-validates the result.
func (of *outputFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(of.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed(formatFlag) {
		cfg.Output.Format = of.format
	}

	if flags.Changed(precisionFlag) {
		cfg.Output.Precision = of.precision
	}

	if of.noColor {
		cfg.Output.Color = false
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

func newFormatter(cfg *config.Config) *render.Formatter {
	return render.NewFormatter(render.Options{
		Precision: cfg.Output.Precision,
		Color:     cfg.Output.Color,
	})
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Flags().GetBool(quietFlag)
	if err != nil {
		return false
	}

	return quiet
}

func progressf(quiet bool, writer io.Writer, format string, args ...any) {
	if quiet {
		return
	}

	_, _ = fmt.Fprintf(writer, "progress: "+format+"\n", args...)
}
