package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func (r *eventRepo) AppendRunEvent(ctx context.Context, data RunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO run_events (sequence, run_id, action, score, total, timestamp) VALUES (?, ?, ?, ?, ?, ?)`,
		seqNum, data.RunID, data.Action, data.Score, data.Total, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

func (r *eventRepo) FinishedRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT run_id, score, total, timestamp FROM run_events
		WHERE action = ? ORDER BY sequence DESC`,
		ActionEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("query finished runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.RunID, &s.Score, &s.Total, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("scan run event: %w", err)
		}
		runs = append(runs, s)
	}
	return runs, rows.Err()
}

func (r *eventRepo) BestRun(ctx context.Context) (*RunSummary, error) {
	var s RunSummary
	err := r.db.QueryRowContext(ctx,
		`SELECT run_id, score, total, timestamp FROM run_events
		WHERE action = ? ORDER BY score DESC, sequence ASC LIMIT 1`,
		ActionEnd,
	).Scan(&s.RunID, &s.Score, &s.Total, &s.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query best run: %w", err)
	}
	return &s, nil
}
