package store

import (
	"context"
	"time"
)

// Run actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// RunEventData records a run starting or finishing.
type RunEventData struct {
	RunID  string
	Action string
	Score  int
	Total  int
}

// AnswerEventData records a single submitted answer.
type AnswerEventData struct {
	RunID         string
	QuestionIndex int
	QuestionText  string
	ChosenIndex   int
	ChosenText    string
	CorrectIndex  int
	Correct       bool
	TimeMs        int
}

// AnswerEvent is a stored answer.
type AnswerEvent struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// RunSummary is a finished run.
type RunSummary struct {
	RunID     string
	Score     int
	Total     int
	Timestamp time.Time
}

// EventRepo provides append and query access to the session journal.
type EventRepo interface {
	// AppendRunEvent records a run start or end.
	AppendRunEvent(ctx context.Context, data RunEventData) error

	// AppendAnswerEvent records a submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RunAnswers returns the answers of a run in submission order.
	RunAnswers(ctx context.Context, runID string) ([]AnswerEvent, error)

	// FinishedRuns returns completed runs, most recent first.
	FinishedRuns(ctx context.Context) ([]RunSummary, error)

	// BestRun returns the highest-scoring finished run, or nil if none.
	BestRun(ctx context.Context) (*RunSummary, error)
}

type eventRepo struct {
	db  dbtx
	seq *sequenceCounter
}
