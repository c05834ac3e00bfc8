package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JeffBelgum/statistical/internal/config"
	"github.com/JeffBelgum/statistical/internal/dataset"
	"github.com/JeffBelgum/statistical/internal/summary"
)

const (
	describeCmdUse   = "describe <sample>"
	describeCmdShort = "Summarize a sample with descriptive statistics"
	describeCmdLong  = `Describe reads a numeric sample from a file or stdin and reports central
tendency, dispersion, distribution shape, and sampling error statistics.
Statistics the sample cannot support (too few values, zero spread) are
omitted from the output.`
	describeArgCount = 1

	populationFlag  = "population"
	populationUsage = "finite population size for the standard error correction (0 = infinite)"
)

// ErrInvalidPopulation is returned when --population is negative.
var ErrInvalidPopulation = errors.New("population size must not be negative")

// DescribeCommand holds configuration and dependencies for the describe command.
type DescribeCommand struct {
	output     outputFlags
	population float64

	loadSample sampleLoader
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return newDescribeCommandWithDeps(dataset.Load)
}

func newDescribeCommandWithDeps(loadSample sampleLoader) *cobra.Command {
	dc := &DescribeCommand{loadSample: loadSample}

	cmd := &cobra.Command{
		Use:   describeCmdUse,
		Short: describeCmdShort,
		Long:  describeCmdLong,
		Args:  cobra.ExactArgs(describeArgCount),
		RunE:  dc.run,
	}

	dc.output.register(cmd)
	cmd.Flags().Float64Var(&dc.population, populationFlag, 0, populationUsage)

	return cmd
}

func (dc *DescribeCommand) run(cmd *cobra.Command, args []string) error {
	quiet := isQuiet(cmd)
	progressWriter := cmd.ErrOrStderr()

	if dc.population < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPopulation, dc.population)
	}

	cfg, err := dc.output.resolve(cmd)
	if err != nil {
		return err
	}

	progressf(quiet, progressWriter, "loading sample %s", args[0])

	ds, err := dc.loadSample(args[0])
	if err != nil {
		return err
	}

	progressf(quiet, progressWriter, "loaded %d values", len(ds.Values))

	opts := summary.Options{}
	if dc.population > 0 {
		opts.PopulationSize = &dc.population
	}

	return writeSummary(cmd.OutOrStdout(), summary.Compute(ds.Values, opts), cfg)
}

func writeSummary(writer io.Writer, s *summary.Summary, cfg *config.Config) error {
	switch cfg.Output.Format {
	case config.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", jsonIndent)

		err := encoder.Encode(s)
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}

		return nil
	case config.FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}

		_, writeErr := writer.Write(data)
		if writeErr != nil {
			return fmt.Errorf("write summary: %w", writeErr)
		}

		return nil
	case config.FormatTable:
		_, err := fmt.Fprintln(writer, newFormatter(cfg).FormatSummary(s))
		if err != nil {
			return fmt.Errorf("write summary: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, cfg.Output.Format)
	}
}
