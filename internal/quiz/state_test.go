package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, src RandSource) *State {
	t.Helper()
	s, err := New(DefaultBank(), src)
	require.NoError(t, err)
	return s
}

// play runs a full quiz with the given answers and returns the state.
func play(t *testing.T, answers []int) *State {
	t.Helper()
	s := newTestState(t, FixedSource(0.5))
	s.SetRoute(RouteQuestion)
	for _, a := range answers {
		require.NoError(t, s.AnswerQuestion(a))
		s.Advance()
	}
	return s
}

func TestNewStartsAtStart(t *testing.T) {
	s := newTestState(t, nil)
	assert.Equal(t, RouteStart, s.Route)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.CurrentQuestionIndex)
	assert.Len(t, s.Questions, 5)
}

func TestNewRejectsInvalidBank(t *testing.T) {
	_, err := New(Bank{}, nil)
	var bankErr *BankError
	require.ErrorAs(t, err, &bankErr)
	assert.Equal(t, "questions", bankErr.Field)
}

func TestAnswerQuestionScoring(t *testing.T) {
	for qi := range DefaultBank().Questions {
		for a := 0; a < ChoiceCount; a++ {
			s := newTestState(t, FixedSource(0))
			s.CurrentQuestionIndex = qi
			s.SetRoute(RouteQuestion)

			require.NoError(t, s.AnswerQuestion(a))

			want := a == s.Questions[qi].CorrectChoiceIndex
			assert.Equal(t, want, s.LastAnswerCorrect, "question %d answer %d", qi, a)
			if want {
				assert.Equal(t, 1, s.Score)
			} else {
				assert.Equal(t, 0, s.Score)
			}
			assert.Equal(t, RouteAnswerFeedback, s.Route)
		}
	}
}

func TestAnswerQuestionSamplesFeedback(t *testing.T) {
	src := &SequenceSource{Samples: []float64{0.1, 0.7}}
	s := newTestState(t, src)
	s.SetRoute(RouteQuestion)

	require.NoError(t, s.AnswerQuestion(0))
	assert.Equal(t, 0.1, s.FeedbackRandom)
	s.Advance()
	require.NoError(t, s.AnswerQuestion(0))
	assert.Equal(t, 0.7, s.FeedbackRandom)
}

func TestAnswerQuestionInvalidIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past last choice", ChoiceCount},
		{"far out", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, FixedSource(0.3))
			s.SetRoute(RouteQuestion)

			err := s.AnswerQuestion(tt.index)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAnswerIndex))

			var idxErr *InvalidAnswerIndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, tt.index, idxErr.Index)

			// State is untouched.
			assert.Equal(t, RouteQuestion, s.Route)
			assert.Equal(t, 0, s.Score)
			assert.Zero(t, s.FeedbackRandom)
		})
	}
}

func TestAnswerQuestionAfterLastQuestion(t *testing.T) {
	s := play(t, []int{0, 1, 2, 3, 0})
	err := s.AnswerQuestion(0)
	assert.ErrorIs(t, err, ErrNoCurrentQuestion)
	assert.Equal(t, 5, s.Score)
}

func TestScoreNeverDecreasesOrExceedsTotal(t *testing.T) {
	s := newTestState(t, FixedSource(0.9))
	s.SetRoute(RouteQuestion)

	prev := 0
	for _, a := range []int{0, 0, 2, 1, 0} {
		require.NoError(t, s.AnswerQuestion(a))
		assert.GreaterOrEqual(t, s.Score, prev)
		assert.LessOrEqual(t, s.Score, len(s.Questions))
		prev = s.Score
		s.Advance()
	}
}

func TestAdvanceRoutes(t *testing.T) {
	s := newTestState(t, nil)
	s.SetRoute(RouteQuestion)
	n := len(s.Questions)

	for i := 1; i <= n; i++ {
		s.Advance()
		assert.Equal(t, i, s.CurrentQuestionIndex)
		if i < n {
			assert.Equal(t, RouteQuestion, s.Route, "call %d", i)
		} else {
			assert.Equal(t, RouteFinalFeedback, s.Route, "call %d", i)
		}
	}
}

// Extra calls past the end are clamped rather than growing the index.
func TestAdvancePastEndIsClamped(t *testing.T) {
	s := newTestState(t, nil)
	s.SetRoute(RouteQuestion)
	for i := 0; i < len(s.Questions)+3; i++ {
		s.Advance()
	}
	assert.Equal(t, len(s.Questions), s.CurrentQuestionIndex)
	assert.Equal(t, RouteFinalFeedback, s.Route)
}

func TestResetFromEveryRoute(t *testing.T) {
	setups := map[string]func(*State){
		"start": func(s *State) {},
		"question": func(s *State) {
			s.SetRoute(RouteQuestion)
			s.Advance()
		},
		"answer-feedback": func(s *State) {
			s.SetRoute(RouteQuestion)
			_ = s.AnswerQuestion(0)
		},
		"final-feedback": func(s *State) {
			s.SetRoute(RouteQuestion)
			for range s.Questions {
				_ = s.AnswerQuestion(0)
				s.Advance()
			}
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s := newTestState(t, FixedSource(0.2))
			setup(s)
			s.Reset()
			assert.Equal(t, 0, s.Score)
			assert.Equal(t, 0, s.CurrentQuestionIndex)
			assert.Equal(t, RouteStart, s.Route)
		})
	}
}

func TestPerfectRun(t *testing.T) {
	s := play(t, []int{0, 1, 2, 3, 0})
	assert.Equal(t, 5, s.Score)
	assert.Equal(t, RouteFinalFeedback, s.Route)
	assert.Equal(t, "You got 5 out of 5 questions right.", s.Result())
}

func TestAllZeroRun(t *testing.T) {
	s := play(t, []int{0, 0, 0, 0, 0})
	assert.Equal(t, 2, s.Score)
	assert.Equal(t, "You got 2 out of 5 questions right.", s.Result())
}

func TestProgressAndLastQuestion(t *testing.T) {
	s := newTestState(t, nil)
	assert.Equal(t, "1/5", s.Progress())
	assert.False(t, s.IsLastQuestion())

	s.CurrentQuestionIndex = 4
	assert.Equal(t, "5/5", s.Progress())
	assert.True(t, s.IsLastQuestion())
}

func TestFeedbackTextUsesPool(t *testing.T) {
	s := newTestState(t, FixedSource(0.99))
	s.SetRoute(RouteQuestion)

	require.NoError(t, s.AnswerQuestion(0))
	assert.Equal(t, s.Praises[len(s.Praises)-1], s.FeedbackText())

	s.Advance()
	require.NoError(t, s.AnswerQuestion(0))
	assert.Equal(t, s.Admonishments[len(s.Admonishments)-1], s.FeedbackText())
}
