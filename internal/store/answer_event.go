package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// dbtx is the subset of *sql.DB the repo needs.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, run_id, question_index, question_text, chosen_index, chosen_text, correct_index, correct, time_ms, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.RunID, data.QuestionIndex, data.QuestionText,
		data.ChosenIndex, data.ChosenText, data.CorrectIndex, data.Correct,
		data.TimeMs, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RunAnswers(ctx context.Context, runID string) ([]AnswerEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, timestamp, run_id, question_index, question_text, chosen_index, chosen_text, correct_index, correct, time_ms
		FROM answer_events WHERE run_id = ? ORDER BY sequence`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query run answers: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var e AnswerEvent
		if err := rows.Scan(
			&e.Sequence, &e.Timestamp, &e.RunID, &e.QuestionIndex, &e.QuestionText,
			&e.ChosenIndex, &e.ChosenText, &e.CorrectIndex, &e.Correct, &e.TimeMs,
		); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
