package estimator

import (
	"math/rand"

	"effectsize/domain/core"
)

// Resample draws an N-of-N sample with replacement from xs, each element
// chosen independently and uniformly at random. The output always has the
// same length as the input; elements may repeat. The only side effect is
// consuming entropy from rng.
func Resample(rng *rand.Rand, xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, core.NewDegenerateSampleError("cannot resample an empty sample", 0)
	}

	out := make([]float64, len(xs))
	for i := range out {
		out[i] = xs[rng.Intn(len(xs))]
	}
	return out, nil
}
