// Package histogram buckets samples into equal-width bins for plotting.
package histogram

import (
	"math"
	"strconv"

	"github.com/JeffBelgum/statistical/pkg/stats"
)

// Bin is one histogram bucket covering [Lower, Upper). The last bin of a
// histogram also includes its upper bound so the sample maximum is counted.
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// Histogram holds the computed bins of a sample.
type Histogram struct {
	Bins []Bin
}

// SturgesBins returns Sturges' rule bin count for a sample of n elements:
// ceil(log2(n)) + 1.
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}

	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// Compute buckets sample into the requested number of equal-width bins
// spanning [min, max]. A bin count of zero or less selects Sturges' rule. A
// constant sample collapses to a single bin.
func Compute(sample []float64, bins int) (*Histogram, error) {
	if len(sample) == 0 {
		return nil, stats.ErrEmptySample
	}

	if bins <= 0 {
		bins = SturgesBins(len(sample))
	}

	lowest, err := stats.Min(sample)
	if err != nil {
		return nil, err
	}

	highest, err := stats.Max(sample)
	if err != nil {
		return nil, err
	}

	if lowest == highest {
		return &Histogram{Bins: []Bin{{Lower: lowest, Upper: highest, Count: len(sample)}}}, nil
	}

	width := (highest - lowest) / float64(bins)
	result := make([]Bin, bins)

	for i := range result {
		result[i].Lower = lowest + float64(i)*width
		result[i].Upper = lowest + float64(i+1)*width
	}

	// Pin the last edge so accumulated rounding cannot push the maximum
	// out of range.
	result[bins-1].Upper = highest

	for _, x := range sample {
		idx := int((x - lowest) / width)
		if idx >= bins {
			idx = bins - 1
		}

		result[idx].Count++
	}

	return &Histogram{Bins: result}, nil
}

// Label renders the bin's interval with the given decimal precision, e.g.
// "[0.00, 1.25)".
func (b Bin) Label(precision int) string {
	return "[" + strconv.FormatFloat(b.Lower, 'f', precision, 64) +
		", " + strconv.FormatFloat(b.Upper, 'f', precision, 64) + ")"
}
