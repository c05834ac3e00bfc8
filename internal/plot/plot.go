// Package plot renders a sample's distribution as a self-contained HTML
// histogram page.
package plot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/JeffBelgum/statistical/internal/histogram"
	"github.com/JeffBelgum/statistical/internal/summary"
)

// Theme selects the chart's color scheme.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// Bar fill colors per theme (amber accents).
const (
	barColorLight = "#a16207"
	barColorDark  = "#d97706"
)

// Shipped ECharts theme names backing our two themes.
const (
	echartsThemeLight = "westeros"
	echartsThemeDark  = "chalk"
)

// Chart layout.
const (
	chartWidth    = "100%"
	chartHeight   = "500px"
	dataZoomEnd   = 100
	labelRotate   = 45
	labelFontSize = 10
)

// Config controls histogram rendering.
type Config struct {
	Title     string
	Theme     Theme
	Precision int
}

// Render writes hist as a standalone HTML page: a bar chart of bin counts
// with the sample's headline statistics as the subtitle.
func Render(w io.Writer, hist *histogram.Histogram, s *summary.Summary, cfg Config) error {
	err := buildChart(hist, s, cfg).Render(w)
	if err != nil {
		return fmt.Errorf("render histogram page: %w", err)
	}

	return nil
}

// buildChart assembles the bar chart for the histogram.
func buildChart(hist *histogram.Histogram, s *summary.Summary, cfg Config) *charts.Bar {
	bar := charts.NewBar()

	initOpts := opts.Initialization{
		Width:     chartWidth,
		Height:    chartHeight,
		PageTitle: cfg.Title,
		Theme:     echartsTheme(cfg.Theme),
	}

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts),
		charts.WithTitleOpts(opts.Title{
			Title:    cfg.Title,
			Subtitle: subtitle(s, cfg.Precision),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate:   labelRotate,
				Interval: "0",
				FontSize: labelFontSize,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: dataZoomEnd},
			opts.DataZoom{Type: "inside"},
		),
	)

	labels := make([]string, len(hist.Bins))
	data := make([]opts.BarData, len(hist.Bins))

	for i, bin := range hist.Bins {
		labels[i] = bin.Label(cfg.Precision)
		data[i] = opts.BarData{Value: bin.Count}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("Count", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: barColor(cfg.Theme)}))

	return bar
}

// echartsTheme maps our theme names onto shipped ECharts themes.
func echartsTheme(theme Theme) string {
	if theme == ThemeLight {
		return echartsThemeLight
	}

	return echartsThemeDark
}

// barColor returns the bar fill for the theme.
func barColor(theme Theme) string {
	if theme == ThemeLight {
		return barColorLight
	}

	return barColorDark
}

// subtitle lists the sample's headline statistics in one line.
func subtitle(s *summary.Summary, precision int) string {
	parts := []string{fmt.Sprintf("n=%d", s.Count)}

	if s.Mean != nil {
		parts = append(parts, "mean "+strconv.FormatFloat(*s.Mean, 'f', precision, 64))
	}

	if s.StandardDeviation != nil {
		parts = append(parts, "stdev "+strconv.FormatFloat(*s.StandardDeviation, 'f', precision, 64))
	}

	if s.Skewness != nil {
		parts = append(parts, "skew "+strconv.FormatFloat(*s.Skewness, 'f', precision, 64))
	}

	return strings.Join(parts, "  ")
}
