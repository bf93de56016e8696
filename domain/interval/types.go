package interval

import (
	"effectsize/domain/core"
)

// ConfidenceInterval is the read-only contract shared by both interval
// variants. Implementations are immutable values; an interval is owned by
// the effect-size result that created it.
//
// INVARIANTS:
// - Lower <= Upper, enforced at construction
// - Coverage in [0, 1], enforced at construction
type ConfidenceInterval interface {
	Lower() float64
	Upper() float64
	Coverage() float64
}

// Normal is a confidence interval derived from a closed-form
// normal-approximation of the estimator's sampling variance.
type Normal struct {
	lower    float64
	upper    float64
	coverage float64
}

// NewNormal constructs an analytic interval, validating invariants.
func NewNormal(lower, upper, coverage float64) (Normal, error) {
	if err := validateBounds(lower, upper, coverage); err != nil {
		return Normal{}, err
	}
	return Normal{lower: lower, upper: upper, coverage: coverage}, nil
}

func (n Normal) Lower() float64    { return n.lower }
func (n Normal) Upper() float64    { return n.upper }
func (n Normal) Coverage() float64 { return n.coverage }

// Bootstrap is a confidence interval derived from the empirical quantiles
// of a resampled statistic. Resamples records how many resample-and-reduce
// iterations built the empirical distribution.
type Bootstrap struct {
	lower     float64
	upper     float64
	coverage  float64
	resamples int
}

// NewBootstrap constructs a bootstrap interval, validating invariants.
// A single resample cannot define a distribution, so resamples must
// exceed 1.
func NewBootstrap(lower, upper, coverage float64, resamples int) (Bootstrap, error) {
	if resamples <= 1 {
		return Bootstrap{}, core.NewResampleCountError(resamples)
	}
	if err := validateBounds(lower, upper, coverage); err != nil {
		return Bootstrap{}, err
	}
	return Bootstrap{lower: lower, upper: upper, coverage: coverage, resamples: resamples}, nil
}

func (b Bootstrap) Lower() float64    { return b.lower }
func (b Bootstrap) Upper() float64    { return b.upper }
func (b Bootstrap) Coverage() float64 { return b.coverage }
func (b Bootstrap) Resamples() int    { return b.resamples }

// validateBounds checks the invariants shared by both variants.
// An inverted pair of bounds indicates a caller or reducer bug, not a
// recoverable runtime condition.
func validateBounds(lower, upper, coverage float64) error {
	if coverage < 0 || coverage > 1 {
		return core.NewCoverageError(coverage)
	}
	if lower > upper {
		return core.NewInvertedBoundsError(lower, upper)
	}
	return nil
}

// Payload is the flat JSON representation of either interval variant.
// Resamples is zero for analytic intervals.
type Payload struct {
	Method    string  `json:"method"` // "normal" or "bootstrap"
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Coverage  float64 `json:"coverage"`
	Resamples int     `json:"resamples,omitempty"`
}

// ToInterval reconstructs the interval value a payload describes,
// re-running construction validation.
func (p Payload) ToInterval() (ConfidenceInterval, error) {
	if p.Method == "bootstrap" {
		return NewBootstrap(p.Lower, p.Upper, p.Coverage, p.Resamples)
	}
	return NewNormal(p.Lower, p.Upper, p.Coverage)
}

// ToPayload converts an interval to its flat payload
func ToPayload(ci ConfidenceInterval) Payload {
	p := Payload{
		Method:   "normal",
		Lower:    ci.Lower(),
		Upper:    ci.Upper(),
		Coverage: ci.Coverage(),
	}
	if b, ok := ci.(Bootstrap); ok {
		p.Method = "bootstrap"
		p.Resamples = b.Resamples()
	}
	return p
}
