package app

import (
	"context"
	"fmt"

	"effectsize/domain/core"
	"effectsize/domain/effect"
	"effectsize/domain/interval"
	"effectsize/domain/report"
	"effectsize/internal/estimator"
	"effectsize/ports"

	"golang.org/x/sync/errgroup"
)

// AnalysisRequest specifies one analysis run over a pair of samples
type AnalysisRequest struct {
	XS        []float64
	YS        []float64
	Source    string // provenance label for the report
	Measures  []effect.Measure
	Method    report.Method
	Coverage  float64
	Resamples int   // bootstrap only; defaulted when zero
	Seed      int64 // bootstrap only; fixes the RNG streams
}

// AnalysisService computes effect-size reports: one point estimate plus a
// confidence interval per requested measure.
type AnalysisService struct {
	rng     ports.RNGPort
	reports ports.ReportRepository // nil disables persistence
}

// NewAnalysisService creates an analysis service. reports may be nil for
// compute-only use.
func NewAnalysisService(rng ports.RNGPort, reports ports.ReportRepository) *AnalysisService {
	return &AnalysisService{rng: rng, reports: reports}
}

// Run executes the request and returns the finished report. Measures run
// concurrently; each bootstrap draws from its own named RNG stream, so a
// fixed seed reproduces identical bounds regardless of scheduling.
func (s *AnalysisService) Run(ctx context.Context, req AnalysisRequest) (*report.Report, error) {
	measures := req.Measures
	if len(measures) == 0 {
		measures = effect.AllMeasures()
	}
	resamples := req.Resamples
	if resamples == 0 {
		resamples = estimator.DefaultResamples
	}
	if _, ok := report.ParseMethod(string(req.Method)); !ok {
		return nil, fmt.Errorf("unknown interval method: %q", req.Method)
	}

	results := make([]effect.Result, len(measures))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range measures {
		g.Go(func() error {
			estimate, err := effect.PointEstimate(m, req.XS, req.YS)
			if err != nil {
				return fmt.Errorf("%s point estimate: %w", m, err)
			}

			var ci interval.ConfidenceInterval
			switch req.Method {
			case report.MethodNormal:
				ci, err = estimator.BuildNormal(req.XS, req.YS, estimate, req.Coverage)
			case report.MethodBootstrap:
				reduce, redErr := effect.ReducerFor(m)
				if redErr != nil {
					return fmt.Errorf("%s reducer: %w", m, redErr)
				}
				stream, rngErr := s.rng.SeededStream(gctx, "bootstrap/"+string(m), req.Seed)
				if rngErr != nil {
					return fmt.Errorf("%s rng stream: %w", m, rngErr)
				}
				ci, err = estimator.BuildBootstrap(req.XS, req.YS, reduce, resamples, req.Coverage, stream)
			}
			if err != nil {
				return fmt.Errorf("%s interval: %w", m, err)
			}

			results[i] = effect.Result{
				Measure:     m,
				Estimate:    estimate,
				Interval:    ci,
				SampleSizeX: len(req.XS),
				SampleSizeY: len(req.YS),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &report.Report{
		ID:        core.ReportID(core.NewID()),
		Source:    req.Source,
		Method:    req.Method,
		Coverage:  req.Coverage,
		Seed:      req.Seed,
		Results:   results,
		CreatedAt: core.Now(),
	}
	if req.Method == report.MethodBootstrap {
		rep.Resamples = resamples
	}

	if s.reports != nil {
		if err := s.reports.Save(ctx, rep); err != nil {
			return nil, fmt.Errorf("failed to persist report: %w", err)
		}
	}
	return rep, nil
}
