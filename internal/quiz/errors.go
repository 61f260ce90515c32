package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAnswerIndex is matched by every *InvalidAnswerIndexError.
	ErrInvalidAnswerIndex = errors.New("invalid answer index")

	// ErrNoCurrentQuestion is returned when an answer arrives after the
	// last question has been passed.
	ErrNoCurrentQuestion = errors.New("no current question")

	// ErrInvalidRoute is returned by ParseRoute for unknown tokens.
	ErrInvalidRoute = errors.New("invalid route")
)

// InvalidAnswerIndexError reports an answer outside the current
// question's choices.
type InvalidAnswerIndexError struct {
	Index    int
	Question int
	Choices  int
}

func (e *InvalidAnswerIndexError) Error() string {
	return fmt.Sprintf("invalid answer index %d for question %d (%d choices)", e.Index, e.Question+1, e.Choices)
}

func (e *InvalidAnswerIndexError) Is(target error) bool {
	return target == ErrInvalidAnswerIndex
}

// BankError describes a structural problem in a question bank.
type BankError struct {
	Field  string
	Reason string
}

func (e *BankError) Error() string {
	if e.Field == "" {
		return "invalid bank: " + e.Reason
	}
	return fmt.Sprintf("invalid bank: %s: %s", e.Field, e.Reason)
}
