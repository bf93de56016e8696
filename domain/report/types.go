package report

import (
	"effectsize/domain/core"
	"effectsize/domain/effect"
)

// Method selects how confidence intervals are derived
type Method string

const (
	MethodNormal    Method = "normal"    // closed-form normal approximation
	MethodBootstrap Method = "bootstrap" // empirical resampling
)

// Report is the aggregate produced by one analysis run: the requested
// configuration plus one result per measure. It owns its results and
// their intervals.
type Report struct {
	ID        core.ReportID
	Source    string // where the samples came from (file path, "inline", ...)
	Method    Method
	Coverage  float64
	Resamples int // zero for normal-only runs
	Seed      int64
	Results   []effect.Result
	CreatedAt core.Timestamp
}

// Payload is the flat JSON structure for a persisted or served report
type Payload struct {
	ID        core.ReportID          `json:"id"`
	Source    string                 `json:"source,omitempty"`
	Method    Method                 `json:"method"`
	Coverage  float64                `json:"coverage"`
	Resamples int                    `json:"resamples,omitempty"`
	Seed      int64                  `json:"seed"`
	Results   []effect.ResultPayload `json:"results"`
	CreatedAt core.Timestamp         `json:"created_at"`
}

// ToPayload converts the report to a flat payload
func (r *Report) ToPayload() Payload {
	results := make([]effect.ResultPayload, 0, len(r.Results))
	for _, res := range r.Results {
		results = append(results, res.ToPayload())
	}
	return Payload{
		ID:        r.ID,
		Source:    r.Source,
		Method:    r.Method,
		Coverage:  r.Coverage,
		Resamples: r.Resamples,
		Seed:      r.Seed,
		Results:   results,
		CreatedAt: r.CreatedAt,
	}
}

// FromPayload reconstructs a report from its flat payload, re-validating
// every interval on the way back in.
func FromPayload(p Payload) (*Report, error) {
	results := make([]effect.Result, 0, len(p.Results))
	for _, rp := range p.Results {
		ci, err := rp.Interval.ToInterval()
		if err != nil {
			return nil, err
		}
		results = append(results, effect.Result{
			Measure:     rp.Measure,
			Estimate:    rp.Estimate,
			Interval:    ci,
			SampleSizeX: rp.SampleSizeX,
			SampleSizeY: rp.SampleSizeY,
		})
	}
	return &Report{
		ID:        p.ID,
		Source:    p.Source,
		Method:    p.Method,
		Coverage:  p.Coverage,
		Resamples: p.Resamples,
		Seed:      p.Seed,
		Results:   results,
		CreatedAt: p.CreatedAt,
	}, nil
}

// ParseMethod parses a string into a Method
func ParseMethod(s string) (Method, bool) {
	switch Method(s) {
	case MethodNormal, MethodBootstrap:
		return Method(s), true
	}
	return "", false
}
