package univariate

import (
	"fmt"

	"github.com/JeffBelgum/statistical/pkg/numeric"
)

// Numerators of the classical large-sample standard-error approximations
// for skewness and kurtosis.
const (
	skewnessErrNumerator = 6
	kurtosisErrNumerator = 24
)

// StandardErrorMean returns the standard error of a sample mean: the
// standard deviation divided by the square root of the sample size. A
// non-nil populationSize applies the finite-population correction
// sqrt((N-n)/(N-1)); it must exceed one and be at least the sample size.
func StandardErrorMean[T numeric.Float](stdev, sampleSize T, populationSize *T) (T, error) {
	if sampleSize <= 0 {
		return 0, fmt.Errorf("%w: sample size %v", ErrInvalidSize, sampleSize)
	}

	se := stdev / numeric.Sqrt(sampleSize)

	if populationSize != nil {
		n := *populationSize
		if n <= 1 || n < sampleSize {
			return 0, fmt.Errorf("%w: population size %v", ErrInvalidSize, n)
		}

		se *= numeric.Sqrt((n - sampleSize) / (n - 1))
	}

	return se, nil
}

// StandardErrorSkewness returns the approximate standard error of a sample
// skewness, sqrt(6/n).
func StandardErrorSkewness[T numeric.Float](sampleSize int) (T, error) {
	if sampleSize <= 0 {
		return 0, fmt.Errorf("%w: sample size %d", ErrInvalidSize, sampleSize)
	}

	return numeric.Sqrt(T(skewnessErrNumerator) / T(sampleSize)), nil
}

// StandardErrorKurtosis returns the approximate standard error of a sample
// kurtosis, sqrt(24/n).
func StandardErrorKurtosis[T numeric.Float](sampleSize int) (T, error) {
	if sampleSize <= 0 {
		return 0, fmt.Errorf("%w: sample size %d", ErrInvalidSize, sampleSize)
	}

	return numeric.Sqrt(T(kurtosisErrNumerator) / T(sampleSize)), nil
}
