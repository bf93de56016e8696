package effect

import (
	"effectsize/domain/interval"
)

// Result bundles a point estimate with the confidence interval built
// around it. The result exclusively owns its interval; both are immutable
// once constructed.
type Result struct {
	Measure     Measure
	Estimate    float64
	Interval    interval.ConfidenceInterval
	SampleSizeX int
	SampleSizeY int
}

// ResultPayload is the flat JSON structure for a single effect-size result
type ResultPayload struct {
	Measure     Measure          `json:"measure"`
	Estimate    float64          `json:"estimate"`
	Interval    interval.Payload `json:"interval"`
	SampleSizeX int              `json:"sample_size_x"`
	SampleSizeY int              `json:"sample_size_y"`
}

// ToPayload converts the result to a flat payload
func (r Result) ToPayload() ResultPayload {
	return ResultPayload{
		Measure:     r.Measure,
		Estimate:    r.Estimate,
		Interval:    interval.ToPayload(r.Interval),
		SampleSizeX: r.SampleSizeX,
		SampleSizeY: r.SampleSizeY,
	}
}
