package effect

import (
	"math"
	"testing"

	"effectsize/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedCohenD recomputes the formula from first principles so the
// implementation and the test cannot share a mistake.
func expectedCohenD(xs, ys []float64) float64 {
	nx, ny := float64(len(xs)), float64(len(ys))
	pooled := math.Sqrt(((nx-1)*sampleVar(xs) + (ny-1)*sampleVar(ys)) / (nx + ny - 2))
	n := nx + ny
	corr := (n - 3) / (n - 2.25) * math.Sqrt((n-2)/n)
	return (mean(xs) - mean(ys)) / pooled * corr
}

func mean(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func sampleVar(data []float64) float64 {
	m := mean(data)
	sumSq := 0.0
	for _, v := range data {
		d := v - m
		sumSq += d * d
	}
	return sumSq / float64(len(data)-1)
}

func TestCohenD(t *testing.T) {
	t.Run("shifted samples with equal spread", func(t *testing.T) {
		xs := []float64{1, 2, 3, 4, 5}
		ys := []float64{2, 3, 4, 5, 6}

		d, err := CohenD(xs, ys)
		require.NoError(t, err)

		// pooled SD is sqrt(2.5) ~ 1.58, so the uncorrected estimate is
		// (3-4)/1.58 ~ -0.63 and the bias correction shrinks it toward 0
		assert.InDelta(t, expectedCohenD(xs, ys), d, 1e-12)
		assert.Less(t, d, 0.0)
		assert.Greater(t, d, -0.6325)
	})

	t.Run("sign follows argument order", func(t *testing.T) {
		xs := []float64{4, 5, 6, 5, 5} // mean 5
		ys := []float64{2, 3, 4, 3, 3} // mean 3

		d, err := CohenD(xs, ys)
		require.NoError(t, err)
		assert.Greater(t, d, 0.0)

		flipped, err := CohenD(ys, xs)
		require.NoError(t, err)
		assert.InDelta(t, -d, flipped, 1e-12)
	})

	t.Run("degenerate samples rejected", func(t *testing.T) {
		_, err := CohenD([]float64{}, []float64{1, 2})
		assert.ErrorIs(t, err, core.ErrDegenerateSample)

		_, err = CohenD([]float64{1, 2}, []float64{1})
		assert.ErrorIs(t, err, core.ErrDegenerateSample)
	})
}

func TestHedgesG(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 3, 4, 5, 6}

	g, err := HedgesG(xs, ys)
	require.NoError(t, err)

	// pooled SD divides by nx+ny here: sqrt(20/10) = sqrt(2)
	n := 10.0
	corr := (n - 3) / (n - 2.25) * math.Sqrt((n-2)/n)
	assert.InDelta(t, -1/math.Sqrt2*corr, g, 1e-12)

	// |g| exceeds |d| for the same data because its pooled SD is smaller
	d, err := CohenD(xs, ys)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(g), math.Abs(d))
}

func TestGlassDelta(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 3, 4, 5, 6}

	delta, err := GlassDelta(xs, ys)
	require.NoError(t, err)

	// control SD is sqrt(2.5); no bias correction
	assert.InDelta(t, -1/math.Sqrt(2.5), delta, 1e-12)
}

func TestPointEstimateDispatch(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 3, 4, 5, 6}

	for _, m := range AllMeasures() {
		est, err := PointEstimate(m, xs, ys)
		require.NoError(t, err, "measure %s", m)

		reduce, err := ReducerFor(m)
		require.NoError(t, err, "measure %s", m)
		assert.InDelta(t, est, reduce(xs, ys), 1e-12, "reducer must match point estimate for %s", m)
	}

	_, err := PointEstimate(Measure("median_diff"), xs, ys)
	assert.Error(t, err)

	reduce, err := ReducerFor(Measure("median_diff"))
	assert.Error(t, err)
	assert.Nil(t, reduce)
}

func TestParseMeasure(t *testing.T) {
	m, err := ParseMeasure("hedges_g")
	require.NoError(t, err)
	assert.Equal(t, MeasureHedgesG, m)

	_, err = ParseMeasure("cohens-d")
	assert.Error(t, err)
}
