package stats

import (
	"fmt"

	"github.com/JeffBelgum/statistical/pkg/numeric"
)

// Degree selects the order of a standardized moment.
type Degree int

// Supported standardized moment degrees.
const (
	// DegreeOne is the first standardized moment. About the sample mean it
	// is identically zero.
	DegreeOne Degree = iota + 1

	// DegreeTwo is the second standardized moment. About the sample mean
	// and the population standard deviation it is identically one.
	DegreeTwo

	// DegreeThree is the third standardized moment, the population
	// skewness.
	DegreeThree

	// DegreeFour is the fourth standardized moment, the population
	// kurtosis before subtracting the normal-distribution offset.
	DegreeFour
)

// StdMoment returns the degree-d standardized moment of v: the mean of
// ((x - center) / scale)^d over the sample. A nil mean selects the sample
// mean as the center; a nil pstdev selects the population standard
// deviation about that center as the scale. Degrees beyond DegreeFour are
// rejected: no derived statistic uses them and they lose numerical meaning
// quickly.
func StdMoment[T numeric.Float](v []T, d Degree, mean, pstdev *T) (T, error) {
	if d < DegreeOne || d > DegreeFour {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDegree, d)
	}

	if len(v) == 0 {
		return 0, ErrEmptySample
	}

	center, err := resolveCenter(v, mean)
	if err != nil {
		return 0, err
	}

	scale, err := resolveScale(v, center, pstdev)
	if err != nil {
		return 0, err
	}

	if scale == 0 {
		return 0, ErrZeroDeviation
	}

	var sum T

	for _, x := range v {
		sum += numeric.PowInt((x-center)/scale, int(d))
	}

	return sum / T(len(v)), nil
}

// resolveScale returns the standardizing denominator: the supplied
// population standard deviation when non-nil, otherwise the population
// standard deviation of v about center.
func resolveScale[T numeric.Float](v []T, center T, pstdev *T) (T, error) {
	if pstdev != nil {
		return *pstdev, nil
	}

	return PopulationStandardDeviation(v, &center)
}
