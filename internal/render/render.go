// Package render formats computed statistics for terminal display.
package render

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/JeffBelgum/statistical/internal/summary"
)

// outlierScore is the absolute standard score beyond which a value is
// flagged in score listings.
const outlierScore = 2.0

// Options defines configuration for rendering.
type Options struct {
	// Precision is the number of decimals printed for each statistic.
	Precision int

	// Color enables sign and outlier highlighting.
	Color bool
}

// Formatter renders summaries and score listings as aligned text tables.
type Formatter struct {
	opts Options
}

// NewFormatter creates a new Formatter with the given settings.
func NewFormatter(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// FormatSummary renders the summary as a two-column table. Statistics the
// sample could not support are left out entirely.
func (f *Formatter) FormatSummary(s *summary.Summary) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Statistic", "Value"})

	f.appendStat(tbl, "Min", s.Min)
	f.appendStat(tbl, "Max", s.Max)
	f.appendStat(tbl, "Mean", s.Mean)
	f.appendStat(tbl, "Median", s.Median)
	f.appendStat(tbl, "Mode", s.Mode)

	f.appendStat(tbl, "Harmonic mean", s.HarmonicMean)
	f.appendStat(tbl, "Geometric mean", s.GeometricMean)
	f.appendStat(tbl, "Quadratic mean", s.QuadraticMean)

	f.appendStat(tbl, "Variance", s.Variance)
	f.appendStat(tbl, "Population variance", s.PopulationVariance)
	f.appendStat(tbl, "Standard deviation", s.StandardDeviation)
	f.appendStat(tbl, "Population standard deviation", s.PopulationStandardDeviation)
	f.appendStat(tbl, "Average deviation", s.AverageDeviation)

	f.appendStat(tbl, "25th percentile", s.Percentile25)
	f.appendStat(tbl, "75th percentile", s.Percentile75)
	f.appendStat(tbl, "95th percentile", s.Percentile95)

	f.appendShapeStat(tbl, "Skewness", s.Skewness)
	f.appendShapeStat(tbl, "Population skewness", s.PopulationSkewness)
	f.appendShapeStat(tbl, "Kurtosis", s.Kurtosis)
	f.appendShapeStat(tbl, "Population kurtosis", s.PopulationKurtosis)
	f.appendShapeStat(tbl, "Pearson skewness", s.PearsonSkewness)

	f.appendStat(tbl, "Standard error of mean", s.StandardErrorMean)
	f.appendStat(tbl, "Standard error of skewness", s.StandardErrorSkewness)
	f.appendStat(tbl, "Standard error of kurtosis", s.StandardErrorKurtosis)

	tbl.AppendFooter(table.Row{"Values", humanize.Comma(int64(s.Count))})

	return tbl.Render()
}

// FormatScores renders values beside their standard scores; values more
// than outlierScore deviations from the mean are highlighted.
func (f *Formatter) FormatScores(values, scores []float64) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "Value", "Score"})

	for i, value := range values {
		score := f.formatValue(scores[i])
		if f.opts.Color && (scores[i] > outlierScore || scores[i] < -outlierScore) {
			score = color.New(color.FgRed).Sprint(score)
		}

		tbl.AppendRow(table.Row{i + 1, f.formatValue(value), score})
	}

	tbl.AppendFooter(table.Row{"Values", humanize.Comma(int64(len(values)))})

	return tbl.Render()
}

// newTable creates a go-pretty table in the house style.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

// appendStat adds one statistic row, skipping unavailable values.
func (f *Formatter) appendStat(tbl table.Writer, name string, value *float64) {
	if value == nil {
		return
	}

	tbl.AppendRow(table.Row{name, f.formatValue(*value)})
}

// appendShapeStat adds a shape-statistic row with its sign highlighted:
// green for positive (right skew, heavy tails), red for negative.
func (f *Formatter) appendShapeStat(tbl table.Writer, name string, value *float64) {
	if value == nil {
		return
	}

	text := f.formatValue(*value)

	if f.opts.Color {
		switch {
		case *value > 0:
			text = color.New(color.FgGreen).Sprint(text)
		case *value < 0:
			text = color.New(color.FgRed).Sprint(text)
		}
	}

	tbl.AppendRow(table.Row{name, text})
}

// formatValue renders x with the configured decimal precision.
func (f *Formatter) formatValue(x float64) string {
	return strconv.FormatFloat(x, 'f', f.opts.Precision, 64)
}
