package univariate

import "errors"

// Sentinel errors reported by the univariate statistics. Degeneracies
// already named by package stats (empty samples, too-small samples, zero
// standard deviations) reuse that package's sentinels so callers match a
// single identity per condition.
var (
	// ErrZeroValue is returned by HarmonicMean when the computation
	// degenerates to a division by zero: the sample contains a zero
	// element, or the element reciprocals cancel to an exactly zero sum.
	ErrZeroValue = errors.New("univariate: zero value")

	// ErrNegativeValue is returned by GeometricMean when the sample
	// contains a negative element, for which no real root exists.
	ErrNegativeValue = errors.New("univariate: negative value")

	// ErrInvalidSize is returned by the standard-error functions when a
	// sample or population size is too small to be usable.
	ErrInvalidSize = errors.New("univariate: invalid size")
)
