package ports

import (
	"context"

	"effectsize/domain/core"
	"effectsize/domain/report"
)

// ReportRepository persists completed analysis reports
type ReportRepository interface {
	// Save stores a report; the report's ID must be set
	Save(ctx context.Context, r *report.Report) error

	// GetByID retrieves a report by its ID, core.ErrReportNotFound if absent
	GetByID(ctx context.Context, id core.ReportID) (*report.Report, error)

	// ListRecent returns the most recently created reports, newest first
	ListRecent(ctx context.Context, limit int) ([]*report.Report, error)
}
