package estimator

import (
	"math"
	"testing"

	"effectsize/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat/distuv"
)

// expectedNormalBounds recomputes the closed form independently of the
// builder under test.
func expectedNormalBounds(nx, ny int, estimate, coverage float64) (float64, float64) {
	fx, fy := float64(nx), float64(ny)
	variance := (fx+fy)/(fx*fy) + estimate*estimate/(2*(fx+fy))
	z := distuv.UnitNormal.Quantile(coverage + (1-coverage)/2)
	margin := z * math.Sqrt(variance)
	return estimate - margin, estimate + margin
}

func TestBuildNormal(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 3, 4, 5, 6}

	t.Run("matches the closed form", func(t *testing.T) {
		ci, err := BuildNormal(xs, ys, -0.63, 0.95)
		require.NoError(t, err)

		wantLower, wantUpper := expectedNormalBounds(5, 5, -0.63, 0.95)
		assert.InDelta(t, wantLower, ci.Lower(), 1e-12)
		assert.InDelta(t, wantUpper, ci.Upper(), 1e-12)
		assert.Equal(t, 0.95, ci.Coverage())
	})

	t.Run("brackets the estimate", func(t *testing.T) {
		ci, err := BuildNormal(xs, ys, -0.63, 0.95)
		require.NoError(t, err)
		assert.Less(t, ci.Lower(), -0.63)
		assert.Greater(t, ci.Upper(), -0.63)
	})

	t.Run("uses z about 1.96 at 95 percent", func(t *testing.T) {
		ci, err := BuildNormal(xs, ys, 0, 0.95)
		require.NoError(t, err)

		// with estimate 0 the variance is (nx+ny)/(nx*ny) alone
		sigma := math.Sqrt(10.0 / 25.0)
		assert.InDelta(t, 1.96*sigma, ci.Upper(), 1e-3)
		assert.InDelta(t, -1.96*sigma, ci.Lower(), 1e-3)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := BuildNormal(xs, ys, 0.4, 0.9)
		require.NoError(t, err)
		b, err := BuildNormal(xs, ys, 0.4, 0.9)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("higher coverage widens the interval", func(t *testing.T) {
		narrow, err := BuildNormal(xs, ys, -0.63, 0.8)
		require.NoError(t, err)
		wide, err := BuildNormal(xs, ys, -0.63, 0.95)
		require.NoError(t, err)

		assert.Less(t, wide.Lower(), narrow.Lower())
		assert.Greater(t, wide.Upper(), narrow.Upper())
	})

	t.Run("invalid coverage rejected", func(t *testing.T) {
		_, err := BuildNormal(xs, ys, 0, 1.5)
		assert.ErrorIs(t, err, core.ErrInvalidCoverage)
	})

	t.Run("empty sample rejected", func(t *testing.T) {
		_, err := BuildNormal(nil, ys, 0, 0.95)
		assert.ErrorIs(t, err, core.ErrDegenerateSample)

		_, err = BuildNormal(xs, []float64{}, 0, 0.95)
		assert.ErrorIs(t, err, core.ErrDegenerateSample)
	})
}
