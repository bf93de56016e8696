package interval

import (
	"effectsize/domain/core"
)

// TailSplit converts a two-sided coverage level into the pair of tail
// quantiles that bound it. The excluded mass 1-c is allocated equally to
// both tails, so low + high == 1 and high - low == c for any valid c.
//
// Example: coverage 0.95 -> (0.025, 0.975).
func TailSplit(coverage float64) (low, high float64, err error) {
	if coverage < 0 || coverage > 1 {
		return 0, 0, core.NewCoverageError(coverage)
	}
	low = (1 - coverage) / 2
	high = coverage + low
	return low, high, nil
}
