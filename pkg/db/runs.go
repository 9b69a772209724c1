package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/askeland/newswatch/pkg/domain"
)

// StartRun inserts a new run record in running state and returns its id
func (db *DB) StartRun(ctx context.Context) (int64, error) {
	var id int64
	retrier := newRetrier()
	err := retrier.Do(ctx, func() error {
		res, err := db.conn.ExecContext(ctx,
			`INSERT INTO pipeline_runs (run_started_at, status) VALUES (?, ?)`,
			time.Now().UTC(), domain.RunStatusRunning)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get run id: %w", err)
		}
		return nil
	})
	return id, err
}

// CompleteRun finalizes a run record with its statistics. Called on every
// batch exit, status tells success from failure.
func (db *DB) CompleteRun(ctx context.Context, id int64, status string, stats domain.RunStats) error {
	retrier := newRetrier()
	return retrier.Do(ctx, func() error {
		query := `
			UPDATE pipeline_runs
			SET run_completed_at = ?,
			    articles_fetched = ?,
			    articles_validated = ?,
			    articles_stored = ?,
			    articles_rejected = ?,
			    ai_topic_count = ?,
			    processing_time_seconds = ?,
			    status = ?
			WHERE id = ?
		`
		res, err := db.conn.ExecContext(ctx, query,
			time.Now().UTC(), stats.Fetched, stats.Validated, stats.Stored,
			stats.Rejected, stats.AITopicCount, stats.ProcessingTime, status, id)
		if err != nil {
			return fmt.Errorf("complete run %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected for run %d: %w", id, err)
		}
		if n == 0 {
			return fmt.Errorf("run %d not found", id)
		}
		return nil
	})
}

// GetRun retrieves one run record
func (db *DB) GetRun(ctx context.Context, id int64) (*domain.PipelineRun, error) {
	var run domain.PipelineRun
	err := db.conn.GetContext(ctx, &run, `SELECT * FROM pipeline_runs WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %d not found", id)
		}
		return nil, fmt.Errorf("get run %d: %w", id, err)
	}
	return &run, nil
}

// GetRecentRuns retrieves the latest run records, newest first
func (db *DB) GetRecentRuns(ctx context.Context, limit int) ([]domain.PipelineRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []domain.PipelineRun
	query := `SELECT * FROM pipeline_runs ORDER BY run_started_at DESC, id DESC LIMIT ?`
	if err := db.conn.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("get recent runs: %w", err)
	}
	return runs, nil
}

// GetLastCompletedRun returns the most recent successfully completed run, or
// nil when there is none yet
func (db *DB) GetLastCompletedRun(ctx context.Context) (*domain.PipelineRun, error) {
	var run domain.PipelineRun
	query := `
		SELECT * FROM pipeline_runs
		WHERE status = ?
		ORDER BY run_started_at DESC, id DESC
		LIMIT 1
	`
	err := db.conn.GetContext(ctx, &run, query, domain.RunStatusCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last completed run: %w", err)
	}
	return &run, nil
}
