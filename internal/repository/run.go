package repository

import (
	"context"
	"database/sql"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"cricket-analytics/internal/domain"
)

// RunRepository records pipeline executions.
type RunRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewRunRepository(sqlDB *sql.DB, logger zerolog.Logger) *RunRepository {
	return &RunRepository{
		db:     sqlDB,
		logger: logger,
	}
}

func (r *RunRepository) Record(ctx context.Context, run *domain.PipelineRun) error {
	if run.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		run.ID = id
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pipeline_runs (id, started_at, finished_at, matches_total, matches_failed, innings_written, deliveries_read)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt, run.FinishedAt, run.MatchesTotal, run.MatchesFailed, run.InningsWritten, run.DeliveriesRead)
	if err != nil {
		return fmt.Errorf("failed to record pipeline run: %w", err)
	}
	return nil
}

// Latest returns the most recent run, or nil when no run has happened yet.
func (r *RunRepository) Latest(ctx context.Context) (*domain.PipelineRun, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, matches_total, matches_failed, innings_written, deliveries_read
		FROM pipeline_runs
		ORDER BY started_at DESC
		LIMIT 1
	`)

	var run domain.PipelineRun
	err := row.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.MatchesTotal, &run.MatchesFailed, &run.InningsWritten, &run.DeliveriesRead)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest pipeline run: %w", err)
	}
	return &run, nil
}
