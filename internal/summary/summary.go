// Package summary computes the full descriptive-statistics surface of a
// sample for the statistical CLI.
package summary

import (
	"github.com/JeffBelgum/statistical/pkg/stats"
	"github.com/JeffBelgum/statistical/pkg/univariate"
)

// Summary holds every statistic computed from one sample. Fields for
// statistics the sample cannot support (too few elements, zero variance, a
// domain violation such as a zero element under the harmonic mean) stay nil
// and are omitted from serialized output.
type Summary struct {
	Count int `json:"count" yaml:"count"`

	Min    *float64 `json:"min,omitempty"    yaml:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"    yaml:"max,omitempty"`
	Mean   *float64 `json:"mean,omitempty"   yaml:"mean,omitempty"`
	Median *float64 `json:"median,omitempty" yaml:"median,omitempty"`
	Mode   *float64 `json:"mode,omitempty"   yaml:"mode,omitempty"`

	HarmonicMean  *float64 `json:"harmonic_mean,omitempty"  yaml:"harmonic_mean,omitempty"`
	GeometricMean *float64 `json:"geometric_mean,omitempty" yaml:"geometric_mean,omitempty"`
	QuadraticMean *float64 `json:"quadratic_mean,omitempty" yaml:"quadratic_mean,omitempty"`

	Variance                    *float64 `json:"variance,omitempty"                      yaml:"variance,omitempty"`
	PopulationVariance          *float64 `json:"population_variance,omitempty"           yaml:"population_variance,omitempty"`
	StandardDeviation           *float64 `json:"standard_deviation,omitempty"            yaml:"standard_deviation,omitempty"`
	PopulationStandardDeviation *float64 `json:"population_standard_deviation,omitempty" yaml:"population_standard_deviation,omitempty"`
	AverageDeviation            *float64 `json:"average_deviation,omitempty"             yaml:"average_deviation,omitempty"`

	Percentile25 *float64 `json:"p25,omitempty" yaml:"p25,omitempty"`
	Percentile75 *float64 `json:"p75,omitempty" yaml:"p75,omitempty"`
	Percentile95 *float64 `json:"p95,omitempty" yaml:"p95,omitempty"`

	Skewness           *float64 `json:"skewness,omitempty"            yaml:"skewness,omitempty"`
	PopulationSkewness *float64 `json:"population_skewness,omitempty" yaml:"population_skewness,omitempty"`
	Kurtosis           *float64 `json:"kurtosis,omitempty"            yaml:"kurtosis,omitempty"`
	PopulationKurtosis *float64 `json:"population_kurtosis,omitempty" yaml:"population_kurtosis,omitempty"`
	PearsonSkewness    *float64 `json:"pearson_skewness,omitempty"    yaml:"pearson_skewness,omitempty"`

	StandardErrorMean     *float64 `json:"standard_error_mean,omitempty"     yaml:"standard_error_mean,omitempty"`
	StandardErrorSkewness *float64 `json:"standard_error_skewness,omitempty" yaml:"standard_error_skewness,omitempty"`
	StandardErrorKurtosis *float64 `json:"standard_error_kurtosis,omitempty" yaml:"standard_error_kurtosis,omitempty"`
}

// Options adjusts which optional inputs Compute folds into the summary.
type Options struct {
	// PopulationSize enables the finite-population correction on the
	// standard error of the mean when non-nil.
	PopulationSize *float64
}

// Compute derives every statistic sample supports. A statistic whose
// preconditions the sample does not meet is left nil instead of failing the
// whole summary, so a two-element sample still reports its mean and
// variance even though skewness needs three elements and kurtosis four.
func Compute(sample []float64, opts Options) *Summary {
	s := &Summary{Count: len(sample)}

	if len(sample) == 0 {
		return s
	}

	mean, err := stats.Mean(sample)
	if err != nil {
		return s
	}

	s.Mean = &mean

	value, err := stats.Min(sample)
	setIfOK(&s.Min, value, err)
	value, err = stats.Max(sample)
	setIfOK(&s.Max, value, err)
	value, err = stats.Median(sample)
	setIfOK(&s.Median, value, err)

	value, err = univariate.HarmonicMean(sample)
	setIfOK(&s.HarmonicMean, value, err)
	value, err = univariate.GeometricMean(sample)
	setIfOK(&s.GeometricMean, value, err)
	value, err = univariate.QuadraticMean(sample)
	setIfOK(&s.QuadraticMean, value, err)

	value, err = stats.Variance(sample, &mean)
	setIfOK(&s.Variance, value, err)
	value, err = stats.PopulationVariance(sample, &mean)
	setIfOK(&s.PopulationVariance, value, err)
	value, err = stats.StandardDeviation(sample, &mean)
	setIfOK(&s.StandardDeviation, value, err)
	value, err = stats.PopulationStandardDeviation(sample, &mean)
	setIfOK(&s.PopulationStandardDeviation, value, err)
	value, err = univariate.AverageDeviation(sample, &mean)
	setIfOK(&s.AverageDeviation, value, err)

	value, err = stats.Percentile(sample, stats.Percentile25)
	setIfOK(&s.Percentile25, value, err)
	value, err = stats.Percentile(sample, stats.Percentile75)
	setIfOK(&s.Percentile75, value, err)
	value, err = stats.Percentile(sample, stats.Percentile95)
	setIfOK(&s.Percentile95, value, err)

	// A mode is only reported when some value actually repeats; for
	// all-distinct samples the most-frequent element is an arbitrary pick.
	if mode, ok := univariate.Mode(sample); ok && occurrences(sample, mode) > 1 {
		s.Mode = &mode

		if s.StandardDeviation != nil {
			value, err = univariate.PearsonSkewness(mean, mode, *s.StandardDeviation)
			setIfOK(&s.PearsonSkewness, value, err)
		}
	}

	value, err = univariate.Skewness(sample, &mean, nil)
	setIfOK(&s.Skewness, value, err)
	value, err = univariate.PSkewness(sample, &mean, nil)
	setIfOK(&s.PopulationSkewness, value, err)
	value, err = univariate.Kurtosis(sample, &mean, nil)
	setIfOK(&s.Kurtosis, value, err)
	value, err = univariate.PKurtosis(sample, &mean, nil)
	setIfOK(&s.PopulationKurtosis, value, err)

	if s.StandardDeviation != nil {
		value, err = univariate.StandardErrorMean(*s.StandardDeviation, float64(len(sample)), opts.PopulationSize)
		setIfOK(&s.StandardErrorMean, value, err)
	}

	// Standard errors of shape estimates are only meaningful when the
	// estimate itself exists.
	if s.Skewness != nil {
		value, err = univariate.StandardErrorSkewness[float64](len(sample))
		setIfOK(&s.StandardErrorSkewness, value, err)
	}

	if s.Kurtosis != nil {
		value, err = univariate.StandardErrorKurtosis[float64](len(sample))
		setIfOK(&s.StandardErrorKurtosis, value, err)
	}

	return s
}

// setIfOK stores value into dst when err is nil; failed statistics stay
// nil.
func setIfOK(dst **float64, value float64, err error) {
	if err != nil {
		return
	}

	*dst = &value
}

// occurrences counts how many times x appears in sample.
func occurrences(sample []float64, x float64) int {
	count := 0

	for _, v := range sample {
		if v == x {
			count++
		}
	}

	return count
}
