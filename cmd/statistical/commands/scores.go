package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JeffBelgum/statistical/internal/config"
	"github.com/JeffBelgum/statistical/internal/dataset"
	"github.com/JeffBelgum/statistical/pkg/stats"
)

const (
	scoresCmdUse   = "scores <sample>"
	scoresCmdShort = "Standard scores (z-scores) for every sample value"
	scoresCmdLong  = `Scores standardizes every value of a sample against the sample mean and
standard deviation. Values more than two standard deviations from the mean
are highlighted in table output.`
	scoresArgCount = 1
)

// ScoreEntry pairs a sample value with its standard score. Index is
// 1-based, matching the row numbers of the table output.
type ScoreEntry struct {
	Index int     `json:"index" yaml:"index"`
	Value float64 `json:"value" yaml:"value"`
	Score float64 `json:"score" yaml:"score"`
}

// ScoresCommand holds configuration and dependencies for the scores command.
type ScoresCommand struct {
	output outputFlags

	loadSample sampleLoader
}

// NewScoresCommand creates the scores command.
func NewScoresCommand() *cobra.Command {
	return newScoresCommandWithDeps(dataset.Load)
}

func newScoresCommandWithDeps(loadSample sampleLoader) *cobra.Command {
	sc := &ScoresCommand{loadSample: loadSample}

	cmd := &cobra.Command{
		Use:   scoresCmdUse,
		Short: scoresCmdShort,
		Long:  scoresCmdLong,
		Args:  cobra.ExactArgs(scoresArgCount),
		RunE:  sc.run,
	}

	sc.output.register(cmd)

	return cmd
}

func (sc *ScoresCommand) run(cmd *cobra.Command, args []string) error {
	quiet := isQuiet(cmd)
	progressWriter := cmd.ErrOrStderr()

	cfg, err := sc.output.resolve(cmd)
	if err != nil {
		return err
	}

	progressf(quiet, progressWriter, "loading sample %s", args[0])

	ds, err := sc.loadSample(args[0])
	if err != nil {
		return err
	}

	scores, err := stats.StandardScores(ds.Values)
	if err != nil {
		return err
	}

	progressf(quiet, progressWriter, "scored %d values", len(scores))

	return writeScores(cmd.OutOrStdout(), ds.Values, scores, cfg)
}

func writeScores(writer io.Writer, values, scores []float64, cfg *config.Config) error {
	switch cfg.Output.Format {
	case config.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", jsonIndent)

		err := encoder.Encode(scoreEntries(values, scores))
		if err != nil {
			return fmt.Errorf("encode scores: %w", err)
		}

		return nil
	case config.FormatYAML:
		data, err := yaml.Marshal(scoreEntries(values, scores))
		if err != nil {
			return fmt.Errorf("marshal scores: %w", err)
		}

		_, writeErr := writer.Write(data)
		if writeErr != nil {
			return fmt.Errorf("write scores: %w", writeErr)
		}

		return nil
	case config.FormatTable:
		_, err := fmt.Fprintln(writer, newFormatter(cfg).FormatScores(values, scores))
		if err != nil {
			return fmt.Errorf("write scores: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, cfg.Output.Format)
	}
}

func scoreEntries(values, scores []float64) []ScoreEntry {
	entries := make([]ScoreEntry, len(scores))
	for i, score := range scores {
		entries[i] = ScoreEntry{
			Index: i + 1,
			Value: values[i],
			Score: score,
		}
	}

	return entries
}
