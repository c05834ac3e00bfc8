// Package univariate builds on package stats with the remaining
// single-variable statistics: the Pythagorean means beyond the arithmetic
// one, the mode, the average absolute deviation, distribution shape
// (skewness and kurtosis in sample-adjusted and population forms), and the
// classical standard errors of the mean, skewness, and kurtosis.
//
// The conventions of package stats apply throughout: optional precomputed
// inputs are pointers with nil meaning "derive from the sample", degenerate
// inputs surface sentinel errors instead of infinities or NaNs, and samples
// are never modified.
package univariate

import (
	"fmt"

	"github.com/JeffBelgum/statistical/pkg/numeric"
	"github.com/JeffBelgum/statistical/pkg/stats"
)

// HarmonicMean returns the harmonic mean of v: the count divided by the sum
// of element reciprocals. It is defined for samples of nonzero elements
// whose reciprocals do not cancel; either kind of zero yields ErrZeroValue.
func HarmonicMean[T numeric.Float](v []T) (T, error) {
	if len(v) == 0 {
		return 0, stats.ErrEmptySample
	}

	var sum T

	for i, x := range v {
		if x == 0 {
			return 0, fmt.Errorf("%w at index %d", ErrZeroValue, i)
		}

		sum += 1 / x
	}

	if sum == 0 {
		return 0, fmt.Errorf("%w: reciprocal sum", ErrZeroValue)
	}

	return T(len(v)) / sum, nil
}

// GeometricMean returns the geometric mean of v: the n-th root of the
// product of its n elements. Negative elements yield ErrNegativeValue; a
// zero element makes the mean zero.
func GeometricMean[T numeric.Float](v []T) (T, error) {
	if len(v) == 0 {
		return 0, stats.ErrEmptySample
	}

	product := T(1)

	for i, x := range v {
		if x < 0 {
			return 0, fmt.Errorf("%w at index %d", ErrNegativeValue, i)
		}

		product *= x
	}

	return numeric.Pow(product, 1/T(len(v))), nil
}

// QuadraticMean returns the quadratic mean (root mean square) of v: the
// square root of the mean of squared elements.
func QuadraticMean[T numeric.Float](v []T) (T, error) {
	if len(v) == 0 {
		return 0, stats.ErrEmptySample
	}

	var sum T

	for _, x := range v {
		sum += x * x
	}

	return numeric.Sqrt(sum / T(len(v))), nil
}

// Mode returns the most frequent element of v. When several elements tie
// for the highest count the choice among them is unspecified: the frequency
// table is a Go map and iteration order is randomized, so callers must not
// rely on which tied element comes back. The second result is false for an
// empty sample.
func Mode[T comparable](v []T) (T, bool) {
	var (
		mode  T
		count int
	)

	if len(v) == 0 {
		return mode, false
	}

	counts := make(map[T]int, len(v))

	for _, x := range v {
		counts[x]++
	}

	for x, c := range counts {
		if c > count {
			mode = x
			count = c
		}
	}

	return mode, true
}

// AverageDeviation returns the mean absolute deviation of v about mean, or
// about the sample mean when mean is nil.
func AverageDeviation[T numeric.Float](v []T, mean *T) (T, error) {
	if len(v) == 0 {
		return 0, stats.ErrEmptySample
	}

	center, err := resolveCenter(v, mean)
	if err != nil {
		return 0, err
	}

	var sum T

	for _, x := range v {
		sum += numeric.Abs(x - center)
	}

	return sum / T(len(v)), nil
}

// resolveCenter returns the supplied center when non-nil, otherwise the
// sample mean. Callers have already rejected empty samples.
func resolveCenter[T numeric.Float](v []T, c *T) (T, error) {
	if c != nil {
		return *c, nil
	}

	return stats.Mean(v)
}
