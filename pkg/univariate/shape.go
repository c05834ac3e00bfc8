package univariate

import (
	"fmt"

	"github.com/JeffBelgum/statistical/pkg/numeric"
	"github.com/JeffBelgum/statistical/pkg/stats"
)

// Sample size floors for the bias-corrected shape statistics; below them
// the correction factors divide by zero.
const (
	minSkewnessSize = 3
	minKurtosisSize = 4
)

// excessKurtosisOffset is the fourth standardized moment of the normal
// distribution; subtracting it centers kurtosis on zero for normal data.
const excessKurtosisOffset = 3

// PearsonSkewness returns Pearson's first skewness coefficient,
// (mean - mode) / stdev, from already-computed inputs. A zero stdev yields
// ErrZeroDeviation.
func PearsonSkewness[T numeric.Float](mean, mode, stdev T) (T, error) {
	if stdev == 0 {
		return 0, stats.ErrZeroDeviation
	}

	return (mean - mode) / stdev, nil
}

// Skewness returns the sample-adjusted skewness of v: the third
// standardized moment scaled by sqrt(n(n-1))/(n-2) to correct small-sample
// bias. Nil mean or pstdev derive the defaults from the sample.
func Skewness[T numeric.Float](v []T, mean, pstdev *T) (T, error) {
	if len(v) < minSkewnessSize {
		return 0, fmt.Errorf("%w: skewness needs at least %d elements, have %d",
			stats.ErrSampleTooSmall, minSkewnessSize, len(v))
	}

	g1, err := stats.StdMoment(v, stats.DegreeThree, mean, pstdev)
	if err != nil {
		return 0, err
	}

	n := T(len(v))

	return g1 * numeric.Sqrt(n*(n-1)) / (n - 2), nil
}

// PSkewness returns the population skewness of v: the third standardized
// moment without any bias correction.
func PSkewness[T numeric.Float](v []T, mean, pstdev *T) (T, error) {
	return stats.StdMoment(v, stats.DegreeThree, mean, pstdev)
}

// Kurtosis returns the sample-adjusted excess kurtosis of v, combining the
// fourth standardized moment with the small-sample correction
// (n-1)/((n-2)(n-3)) * ((n+1)g2 - 3(n-1)). Normal data scores near zero.
func Kurtosis[T numeric.Float](v []T, mean, pstdev *T) (T, error) {
	if len(v) < minKurtosisSize {
		return 0, fmt.Errorf("%w: kurtosis needs at least %d elements, have %d",
			stats.ErrSampleTooSmall, minKurtosisSize, len(v))
	}

	g2, err := stats.StdMoment(v, stats.DegreeFour, mean, pstdev)
	if err != nil {
		return 0, err
	}

	n := T(len(v))
	q := (n - 1) / ((n - 2) * (n - 3))

	return q * ((n+1)*g2 - 3*(n-1)), nil
}

// PKurtosis returns the population excess kurtosis of v: the fourth
// standardized moment minus the normal-distribution offset.
func PKurtosis[T numeric.Float](v []T, mean, pstdev *T) (T, error) {
	g2, err := stats.StdMoment(v, stats.DegreeFour, mean, pstdev)
	if err != nil {
		return 0, err
	}

	return g2 - excessKurtosisOffset, nil
}
