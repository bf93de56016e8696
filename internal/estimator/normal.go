package estimator

import (
	"math"

	"effectsize/domain/core"
	"effectsize/domain/interval"

	"gonum.org/v1/gonum/stat/distuv"
)

// BuildNormal derives an analytic confidence interval around a precomputed
// effect-size estimate using a normal approximation of the estimator's
// sampling variance:
//
//	sigma^2 = (nx+ny)/(nx*ny) + es^2/(2*(nx+ny))
//
// The margin is the upper-tail critical value of the standard normal at
// the requested coverage times sigma. Closed form, deterministic, O(1).
func BuildNormal(xs, ys []float64, estimate, coverage float64) (interval.Normal, error) {
	_, high, err := interval.TailSplit(coverage)
	if err != nil {
		return interval.Normal{}, err
	}

	nx, ny := float64(len(xs)), float64(len(ys))
	if nx*ny == 0 {
		return interval.Normal{}, core.NewDegenerateSampleError("both samples must be non-empty", len(xs)*len(ys))
	}

	variance := (nx+ny)/(nx*ny) + estimate*estimate/(2*(nx+ny))
	z := distuv.UnitNormal.Quantile(high)
	margin := z * math.Sqrt(variance)

	return interval.NewNormal(estimate-margin, estimate+margin, coverage)
}
