package estimator

import (
	"math"
	"math/rand"
	"sort"

	"effectsize/domain/core"
	"effectsize/domain/interval"
)

// DefaultResamples is the bootstrap resample count used when a caller does
// not specify one.
const DefaultResamples = 1000

// Reducer collapses two samples to a single scalar statistic
type Reducer func(xs, ys []float64) float64

// BuildBootstrap derives an empirical confidence interval by resampling
// both inputs with replacement, applying the reducer to each pair of
// resamples, and reading the two tail quantiles off the resulting
// distribution. The reducer must be the same statistic whose point
// estimate the interval is meant to bracket.
//
// Bounds are reproducible for a fixed rng seed; with an unseeded source
// they vary but remain statistically consistent. The resample iterations
// run sequentially; callers wanting parallelism run whole builds
// concurrently, each with its own rng stream.
//
// A zero-variance resample can drive standardized reducers to NaN or
// ±Inf; any non-finite reduced value fails the build instead of leaking
// into the quantiles.
func BuildBootstrap(xs, ys []float64, reduce Reducer, resamples int, coverage float64, rng *rand.Rand) (interval.Bootstrap, error) {
	low, high, err := interval.TailSplit(coverage)
	if err != nil {
		return interval.Bootstrap{}, err
	}
	if resamples <= 1 {
		return interval.Bootstrap{}, core.NewResampleCountError(resamples)
	}
	if len(xs) == 0 || len(ys) == 0 {
		return interval.Bootstrap{}, core.NewDegenerateSampleError("both samples must be non-empty", len(xs)*len(ys))
	}

	distribution := make([]float64, resamples)
	for i := range distribution {
		rx, err := Resample(rng, xs)
		if err != nil {
			return interval.Bootstrap{}, err
		}
		ry, err := Resample(rng, ys)
		if err != nil {
			return interval.Bootstrap{}, err
		}
		v := reduce(rx, ry)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return interval.Bootstrap{}, core.NewDegenerateSampleError("resampled statistic is not finite", len(xs)+len(ys))
		}
		distribution[i] = v
	}

	sort.Float64s(distribution)
	lower := quantile(distribution, low)
	upper := quantile(distribution, high)

	return interval.NewBootstrap(lower, upper, coverage, resamples)
}

// quantile reads the q-th quantile off sorted data with linear
// interpolation between adjacent order statistics.
func quantile(sorted []float64, q float64) float64 {
	index := q * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
