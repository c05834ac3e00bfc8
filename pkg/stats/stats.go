// Package stats provides the core descriptive statistics: arithmetic mean,
// median, extrema, deviations about a center, sample and population
// variances and standard deviations, standard scores, percentiles, and
// standardized moments.
//
// Functions taking an optional precomputed input (a mean or a population
// standard deviation) accept it as a pointer; nil means "compute it from the
// sample". Every function validates its sample before computing and reports
// degenerate inputs through the package's sentinel errors rather than
// returning infinities or NaNs. Samples are never modified: rank-based
// statistics sort a scratch copy.
package stats

import (
	"fmt"

	"github.com/JeffBelgum/statistical/pkg/numeric"
	"github.com/JeffBelgum/statistical/pkg/qsort"
)

// minVarianceSize is the smallest sample with a defined sample variance;
// Bessel's correction divides by n-1.
const minVarianceSize = 2

// Common percentile arguments.
const (
	Percentile25     = 0.25
	PercentileMedian = 0.5
	Percentile75     = 0.75
	Percentile95     = 0.95
)

// Mean returns the arithmetic mean of v.
func Mean[T numeric.Float](v []T) (T, error) {
	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	var sum T

	for _, x := range v {
		sum += x
	}

	return sum / T(len(v)), nil
}

// Median returns the middle element of v under ascending order, leaving v
// untouched. For even-length samples the two middle elements are averaged;
// with an integer element type that average truncates toward zero.
func Median[T numeric.Real](v []T) (T, error) {
	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	scratch := make([]T, len(v))
	copy(scratch, v)
	qsort.Sort(scratch)

	mid := len(scratch) / 2
	if len(scratch)%2 != 0 {
		return scratch[mid], nil
	}

	return (scratch[mid-1] + scratch[mid]) / 2, nil
}

// Min returns the smallest element of v.
func Min[T numeric.Real](v []T) (T, error) {
	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	lowest := v[0]

	for _, x := range v[1:] {
		if x < lowest {
			lowest = x
		}
	}

	return lowest, nil
}

// Max returns the largest element of v.
func Max[T numeric.Real](v []T) (T, error) {
	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	highest := v[0]

	for _, x := range v[1:] {
		if x > highest {
			highest = x
		}
	}

	return highest, nil
}

// SumSquareDeviations returns the sum of squared deviations of v about c,
// or about the sample mean when c is nil. The result is the raw sum, not an
// average; the variance functions divide it by their respective counts.
func SumSquareDeviations[T numeric.Float](v []T, c *T) (T, error) {
	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	center, err := resolveCenter(v, c)
	if err != nil {
		return 0, err
	}

	var sum T

	for _, x := range v {
		d := x - center
		sum += d * d
	}

	if sum < 0 {
		panic("stats: negative sum of squared deviations")
	}

	return sum, nil
}

// resolveCenter returns the deviation center: the supplied value when
// non-nil, otherwise the sample mean. Callers have already rejected empty
// samples.
func resolveCenter[T numeric.Float](v []T, c *T) (T, error) {
	if c != nil {
		return *c, nil
	}

	return Mean(v)
}

// Variance returns the Bessel-corrected sample variance of v, dividing the
// squared deviations by n-1. Passing a precomputed mean skips the averaging
// pass; nil computes it.
func Variance[T numeric.Float](v []T, mean *T) (T, error) {
	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	if len(v) < minVarianceSize {
		return 0, fmt.Errorf("%w: sample variance needs at least %d elements, have %d",
			ErrSampleTooSmall, minVarianceSize, len(v))
	}

	sum, err := SumSquareDeviations(v, mean)
	if err != nil {
		return 0, err
	}

	return sum / T(len(v)-1), nil
}

// StandardDeviation returns the square root of the sample variance.
func StandardDeviation[T numeric.Float](v []T, mean *T) (T, error) {
	variance, err := Variance(v, mean)
	if err != nil {
		return 0, err
	}

	return numeric.Sqrt(variance), nil
}

// PopulationVariance returns the variance of v treated as a complete
// population, dividing the squared deviations by n.
func PopulationVariance[T numeric.Float](v []T, mean *T) (T, error) {
	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	sum, err := SumSquareDeviations(v, mean)
	if err != nil {
		return 0, err
	}

	return sum / T(len(v)), nil
}

// PopulationStandardDeviation returns the square root of the population
// variance.
func PopulationStandardDeviation[T numeric.Float](v []T, mean *T) (T, error) {
	variance, err := PopulationVariance(v, mean)
	if err != nil {
		return 0, err
	}

	return numeric.Sqrt(variance), nil
}

// StandardScores returns the z-score of every element of v: its signed
// distance from the sample mean in units of the sample standard deviation.
// Result order follows v. A sample whose elements are all identical has no
// defined scores and yields ErrZeroDeviation.
func StandardScores[T numeric.Float](v []T) ([]T, error) {
	mean, err := Mean(v)
	if err != nil {
		return nil, err
	}

	stdev, err := StandardDeviation(v, &mean)
	if err != nil {
		return nil, err
	}

	if stdev == 0 {
		return nil, ErrZeroDeviation
	}

	scores := make([]T, len(v))

	for i, x := range v {
		scores[i] = (x - mean) / stdev
	}

	return scores, nil
}

// Percentile returns the value at percentile p of v, where p lies in
// [0, 1]. The sample is rank-ordered into a scratch copy and non-integral
// ranks are linearly interpolated between the two straddling elements, so
// the result need not be an element of v.
func Percentile[T numeric.Float](v []T, p T) (T, error) {
	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	if p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPercentile, p)
	}

	scratch := make([]T, len(v))
	copy(scratch, v)
	qsort.Sort(scratch)

	idx := p * T(len(scratch)-1)
	lower := int(idx)

	if lower >= len(scratch)-1 {
		return scratch[len(scratch)-1], nil
	}

	frac := idx - T(lower)
	if frac == 0 {
		return scratch[lower], nil
	}

	return scratch[lower]*(1-frac) + scratch[lower+1]*frac, nil
}
