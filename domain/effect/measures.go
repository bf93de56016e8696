package effect

import (
	"fmt"
	"math"

	"effectsize/domain/core"

	"github.com/montanaflynn/stats"
)

// Measure identifies which standardized effect-size formula to apply
type Measure string

const (
	MeasureCohenD     Measure = "cohen_d"     // pooled SD with n-2 adjustment, bias corrected
	MeasureHedgesG    Measure = "hedges_g"    // pooled SD without the n-2 adjustment, bias corrected
	MeasureGlassDelta Measure = "glass_delta" // control-group SD only, no correction
)

// AllMeasures lists every supported measure in a stable order
func AllMeasures() []Measure {
	return []Measure{MeasureCohenD, MeasureHedgesG, MeasureGlassDelta}
}

// ParseMeasure parses a string into a Measure
func ParseMeasure(s string) (Measure, error) {
	switch Measure(s) {
	case MeasureCohenD, MeasureHedgesG, MeasureGlassDelta:
		return Measure(s), nil
	}
	return "", fmt.Errorf("unknown effect-size measure: %q", s)
}

// CohenD computes Cohen's d: the standardized mean difference over the
// pooled standard deviation with an n-2 degrees-of-freedom adjustment,
// scaled by the small-sample bias correction. The correction is applied
// unconditionally. Positive when mean(xs) exceeds mean(ys).
func CohenD(xs, ys []float64) (float64, error) {
	if err := validateGroups(xs, ys); err != nil {
		return 0, err
	}
	return cohenD(xs, ys), nil
}

// HedgesG computes Hedge's g: identical in form to Cohen's d but the
// pooled standard deviation divides by nx+ny rather than nx+ny-2.
func HedgesG(xs, ys []float64) (float64, error) {
	if err := validateGroups(xs, ys); err != nil {
		return 0, err
	}
	return hedgesG(xs, ys), nil
}

// GlassDelta computes Glass's delta: the mean difference over the control
// group's standard deviation alone. No pooling, no bias correction. Used
// when group variances differ substantially; ys is the control group.
func GlassDelta(xs, ys []float64) (float64, error) {
	if err := validateGroups(xs, ys); err != nil {
		return 0, err
	}
	return glassDelta(xs, ys), nil
}

// PointEstimate dispatches to the formula for the given measure
func PointEstimate(m Measure, xs, ys []float64) (float64, error) {
	switch m {
	case MeasureCohenD:
		return CohenD(xs, ys)
	case MeasureHedgesG:
		return HedgesG(xs, ys)
	case MeasureGlassDelta:
		return GlassDelta(xs, ys)
	}
	return 0, fmt.Errorf("unknown effect-size measure: %q", m)
}

// ReducerFor returns the unchecked reducer for a measure. The bootstrap
// builder applies the same reducer used for the point estimate to every
// pair of resamples, so it skips re-validation of inputs that already
// passed it. Unknown measures fail rather than falling back to a
// different statistic.
func ReducerFor(m Measure) (func(xs, ys []float64) float64, error) {
	switch m {
	case MeasureCohenD:
		return cohenD, nil
	case MeasureHedgesG:
		return hedgesG, nil
	case MeasureGlassDelta:
		return glassDelta, nil
	}
	return nil, fmt.Errorf("unknown effect-size measure: %q", m)
}

func cohenD(xs, ys []float64) float64 {
	nx, ny := float64(len(xs)), float64(len(ys))
	meanX, _ := stats.Mean(xs)
	meanY, _ := stats.Mean(ys)
	varX, _ := stats.SampleVariance(xs)
	varY, _ := stats.SampleVariance(ys)

	pooled := math.Sqrt(((nx-1)*varX + (ny-1)*varY) / (nx + ny - 2))
	return (meanX - meanY) / pooled * correction(nx+ny)
}

func hedgesG(xs, ys []float64) float64 {
	nx, ny := float64(len(xs)), float64(len(ys))
	meanX, _ := stats.Mean(xs)
	meanY, _ := stats.Mean(ys)
	varX, _ := stats.SampleVariance(xs)
	varY, _ := stats.SampleVariance(ys)

	pooled := math.Sqrt(((nx-1)*varX + (ny-1)*varY) / (nx + ny))
	return (meanX - meanY) / pooled * correction(nx+ny)
}

func glassDelta(xs, ys []float64) float64 {
	meanX, _ := stats.Mean(xs)
	meanY, _ := stats.Mean(ys)
	sdY, _ := stats.StandardDeviationSample(ys)
	return (meanX - meanY) / sdY
}

// correction is the small-sample bias correction applied to the pooled
// estimators. Requires n > 1.
func correction(n float64) float64 {
	return (n - 3) / (n - 2.25) * math.Sqrt((n-2)/n)
}

// validateGroups rejects samples too small for a sample-variance estimate
func validateGroups(xs, ys []float64) error {
	if len(xs) < 2 {
		return core.NewDegenerateSampleError("first sample needs at least 2 elements", len(xs))
	}
	if len(ys) < 2 {
		return core.NewDegenerateSampleError("second sample needs at least 2 elements", len(ys))
	}
	return nil
}
