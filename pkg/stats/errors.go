package stats

import "errors"

// Sentinel errors reported by the statistics functions. Callers should match
// them with errors.Is; functions that need to attach detail wrap these with
// fmt.Errorf and %w.
var (
	// ErrEmptySample is returned when a statistic is requested over a
	// sample with no elements.
	ErrEmptySample = errors.New("stats: empty sample")

	// ErrSampleTooSmall is returned when a sample has elements but fewer
	// than the statistic's minimum.
	ErrSampleTooSmall = errors.New("stats: sample too small")

	// ErrZeroDeviation is returned when a statistic divides by a standard
	// deviation that is zero, which happens when every element of the
	// sample is identical.
	ErrZeroDeviation = errors.New("stats: zero standard deviation")

	// ErrInvalidDegree is returned when a moment degree falls outside the
	// supported range.
	ErrInvalidDegree = errors.New("stats: invalid moment degree")

	// ErrInvalidPercentile is returned when a requested percentile falls
	// outside the closed interval [0, 1].
	ErrInvalidPercentile = errors.New("stats: percentile out of range")
)
