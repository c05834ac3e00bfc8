package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JeffBelgum/statistical/internal/config"
	"github.com/JeffBelgum/statistical/internal/dataset"
	"github.com/JeffBelgum/statistical/internal/histogram"
	"github.com/JeffBelgum/statistical/internal/plot"
	"github.com/JeffBelgum/statistical/internal/summary"
)

const (
	plotCmdUse   = "plot <sample>"
	plotCmdShort = "Histogram of a sample as a standalone HTML page"
	plotCmdLong  = `Plot bins a numeric sample into a histogram and renders it as a
self-contained HTML page with the sample's headline statistics.`
	plotArgCount = 1

	plotOutputFlag  = "output"
	plotOutputShort = "o"
	plotOutputUsage = `output HTML file ("-" writes to stdout)`

	plotBinsFlag  = "bins"
	plotBinsUsage = "number of histogram bins (0 = Sturges' rule)"

	plotThemeFlag  = "theme"
	plotThemeUsage = "page theme: dark, light"

	plotTitleFlag  = "title"
	plotTitleUsage = "chart title (defaults to the dataset name)"

	defaultPlotOutput = "distribution.html"
	defaultPlotTitle  = "Sample distribution"

	// stdoutPath selects stdout instead of a file as the plot target.
	stdoutPath = "-"
)

// PlotCommand holds configuration and dependencies for the plot command.
type PlotCommand struct {
	configPath string
	output     string
	bins       int
	theme      string
	title      string

	loadSample sampleLoader
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	return newPlotCommandWithDeps(dataset.Load)
}

func newPlotCommandWithDeps(loadSample sampleLoader) *cobra.Command {
	pc := &PlotCommand{loadSample: loadSample}

	cmd := &cobra.Command{
		Use:   plotCmdUse,
		Short: plotCmdShort,
		Long:  plotCmdLong,
		Args:  cobra.ExactArgs(plotArgCount),
		RunE:  pc.run,
	}

	cmd.Flags().StringVarP(&pc.configPath, configFlag, configFlagShort, "", configUsage)
	cmd.Flags().StringVarP(&pc.output, plotOutputFlag, plotOutputShort, defaultPlotOutput, plotOutputUsage)
	cmd.Flags().IntVar(&pc.bins, plotBinsFlag, 0, plotBinsUsage)
	cmd.Flags().StringVar(&pc.theme, plotThemeFlag, "", plotThemeUsage)
	cmd.Flags().StringVar(&pc.title, plotTitleFlag, "", plotTitleUsage)

	return cmd
}

func (pc *PlotCommand) run(cmd *cobra.Command, args []string) error {
	quiet := isQuiet(cmd)
	progressWriter := cmd.ErrOrStderr()

	cfg, err := pc.resolveConfig(cmd)
	if err != nil {
		return err
	}

	progressf(quiet, progressWriter, "loading sample %s", args[0])

	ds, err := pc.loadSample(args[0])
	if err != nil {
		return err
	}

	hist, err := histogram.Compute(ds.Values, cfg.Plot.Bins)
	if err != nil {
		return err
	}

	progressf(quiet, progressWriter, "binned %d values into %d bins", len(ds.Values), len(hist.Bins))

	plotCfg := plot.Config{
		Title:     pc.resolveTitle(ds),
		Theme:     plot.Theme(cfg.Plot.Theme),
		Precision: cfg.Output.Precision,
	}

	s := summary.Compute(ds.Values, summary.Options{})

	if pc.output == stdoutPath {
		return plot.Render(cmd.OutOrStdout(), hist, s, plotCfg)
	}

	file, err := os.Create(pc.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", pc.output, err)
	}
	defer file.Close()

	renderErr := plot.Render(file, hist, s, plotCfg)
	if renderErr != nil {
		return renderErr
	}

	progressf(quiet, progressWriter, "wrote %s", pc.output)

	return nil
}

// resolveConfig loads the configuration and overlays the plot flags the
// user set explicitly.
func (pc *PlotCommand) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(pc.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed(plotBinsFlag) {
		cfg.Plot.Bins = pc.bins
	}

	if flags.Changed(plotThemeFlag) {
		cfg.Plot.Theme = pc.theme
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

func (pc *PlotCommand) resolveTitle(ds *dataset.Dataset) string {
	if pc.title != "" {
		return pc.title
	}

	if ds.Name != "" {
		return ds.Name
	}

	return defaultPlotTitle
}
