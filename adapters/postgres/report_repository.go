package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"effectsize/domain/core"
	"effectsize/domain/report"
	"effectsize/ports"

	"github.com/jmoiron/sqlx"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &reportRepository{db: db}
}

// EnsureSchema creates the effect_reports table if it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS effect_reports (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL DEFAULT '',
		method TEXT NOT NULL,
		coverage DOUBLE PRECISION NOT NULL,
		resamples INTEGER NOT NULL DEFAULT 0,
		seed BIGINT NOT NULL DEFAULT 0,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure effect_reports schema: %w", err)
	}
	return nil
}

// Save inserts a completed report
func (r *reportRepository) Save(ctx context.Context, rep *report.Report) error {
	if rep.ID == "" {
		return fmt.Errorf("report ID must be set before saving")
	}

	payloadJSON, err := json.Marshal(rep.ToPayload())
	if err != nil {
		return fmt.Errorf("failed to marshal report payload: %w", err)
	}

	query := `INSERT INTO effect_reports (
		id, source, method, coverage, resamples, seed, payload, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.ExecContext(ctx, query,
		rep.ID.String(), rep.Source, string(rep.Method), rep.Coverage,
		rep.Resamples, rep.Seed, payloadJSON, rep.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by its ID
func (r *reportRepository) GetByID(ctx context.Context, id core.ReportID) (*report.Report, error) {
	query := `SELECT payload FROM effect_reports WHERE id = $1`

	var payloadJSON []byte
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(&payloadJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", core.ErrReportNotFound, id)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return unmarshalReport(payloadJSON)
}

// ListRecent returns the most recent reports, newest first
func (r *reportRepository) ListRecent(ctx context.Context, limit int) ([]*report.Report, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT payload FROM effect_reports ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*report.Report
	for rows.Next() {
		var payloadJSON []byte
		if err := rows.Scan(&payloadJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		rep, err := unmarshalReport(payloadJSON)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func unmarshalReport(payloadJSON []byte) (*report.Report, error) {
	var payload report.Payload
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report payload: %w", err)
	}
	rep, err := report.FromPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("stored report failed validation: %w", err)
	}
	return rep, nil
}
