package quiz

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	qz "github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/screens/history"
	"github.com/abhisek/quizbox/internal/store"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/view"
)

// QuizScreen wires key events to state transitions. Every event runs its
// transition and a full render pass before returning.
type QuizScreen struct {
	state     *qz.State
	layout    *view.Layout
	regions   view.Regions
	renderer  *view.Renderer
	eventRepo store.EventRepo
	log       *zap.Logger

	selected      int
	runID         string
	questionStart time.Time
	review        []string
	errMsg        string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for state and renders the start region.
// eventRepo and log may be nil.
func New(state *qz.State, eventRepo store.EventRepo, log *zap.Logger) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &QuizScreen{
		state:     state,
		layout:    view.NewLayout(StartMarkup(len(state.Questions))),
		eventRepo: eventRepo,
		log:       log,
		selected:  view.NoSelection,
	}
	s.regions = s.layout.Regions()
	s.renderer = &view.Renderer{Review: func() []string { return s.review }}
	s.render()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	switch s.state.Route {
	case qz.RouteQuestion:
		return "Question " + s.state.Progress()
	case qz.RouteAnswerFeedback:
		return "Feedback"
	case qz.RouteFinalFeedback:
		return "Results"
	default:
		return "Welcome"
	}
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("★ %d", s.state.Score)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.state.Route {
	case qz.RouteQuestion:
		if s.selected == view.NoSelection {
			return hints(keys.Up, keys.Choose)
		}
		return hints(keys.Up, keys.Choose, keys.Submit)
	case qz.RouteAnswerFeedback:
		next := keys.Next
		next.SetHelp("Enter", view.NextLabel(s.state))
		return hints(next)
	case qz.RouteFinalFeedback:
		if s.eventRepo != nil {
			return hints(keys.Restart, keys.History)
		}
		return hints(keys.Restart)
	default:
		return hints(keys.Start)
	}
}

// State returns the quiz state the screen drives.
func (s *QuizScreen) State() *qz.State { return s.state }

// Layout returns the pane tree the screen renders into.
func (s *QuizScreen) Layout() *view.Layout { return s.layout }

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch s.state.Route {
	case qz.RouteStart:
		if key.Matches(kmsg, keys.Start) {
			s.handleStart()
		}
	case qz.RouteQuestion:
		switch {
		case key.Matches(kmsg, keys.Up):
			s.moveSelection(-1)
		case key.Matches(kmsg, keys.Down):
			s.moveSelection(1)
		case key.Matches(kmsg, keys.Choose):
			s.choose(int(kmsg.String()[0] - '1'))
		case key.Matches(kmsg, keys.Submit):
			s.handleAnswer()
		}
	case qz.RouteAnswerFeedback:
		if key.Matches(kmsg, keys.Next) {
			s.handleNext()
		}
	case qz.RouteFinalFeedback:
		switch {
		case key.Matches(kmsg, keys.Restart):
			s.handleRestart()
		case key.Matches(kmsg, keys.History) && s.eventRepo != nil:
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(s.eventRepo)}
			}
		}
	}
	return s, nil
}

// handleStart is the start-form submit event.
func (s *QuizScreen) handleStart() {
	s.state.SetRoute(qz.RouteQuestion)
	s.beginRun()
	s.render()
}

// handleAnswer is the question-form submit event. Without a selection
// there is nothing to submit.
func (s *QuizScreen) handleAnswer() {
	if s.selected == view.NoSelection {
		return
	}
	q, _ := s.state.CurrentQuestion()
	index := s.state.CurrentQuestionIndex
	if err := s.state.AnswerQuestion(s.selected); err != nil {
		s.fail("answer question", err)
		return
	}
	s.recordAnswer(q, index, s.selected)
	s.selected = view.NoSelection
	s.render()
}

// handleNext is the see-next click event.
func (s *QuizScreen) handleNext() {
	s.state.Advance()
	if s.state.Route == qz.RouteFinalFeedback {
		s.endRun()
	} else {
		s.questionStart = time.Now()
	}
	s.render()
}

// handleRestart is the restart-game click event.
func (s *QuizScreen) handleRestart() {
	s.state.Reset()
	s.selected = view.NoSelection
	s.review = nil
	s.runID = ""
	s.render()
}

func (s *QuizScreen) moveSelection(delta int) {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return
	}
	next := s.selected + delta
	if s.selected == view.NoSelection {
		next = 0
	}
	if next < 0 || next >= len(q.Choices) {
		return
	}
	s.choose(next)
}

func (s *QuizScreen) choose(i int) {
	q, ok := s.state.CurrentQuestion()
	if !ok || !q.ValidChoice(i) {
		return
	}
	if err := view.Select(s.state, s.regions, i); err != nil {
		s.fail("select choice", err)
		return
	}
	s.selected = i
}

func (s *QuizScreen) render() {
	if err := s.renderer.Render(s.state, s.regions); err != nil {
		s.fail("render", err)
		return
	}
	s.errMsg = ""
}

func (s *QuizScreen) fail(op string, err error) {
	s.errMsg = fmt.Sprintf("%s: %v", op, err)
	s.log.Error(op+" failed",
		zap.Error(err),
		zap.Stringer("route", s.state.Route),
		zap.Int("question", s.state.CurrentQuestionIndex),
	)
}

func (s *QuizScreen) beginRun() {
	s.runID = uuid.New().String()
	s.questionStart = time.Now()
	s.log.Info("run started", zap.String("run_id", s.runID), zap.Int("questions", len(s.state.Questions)))
	if s.eventRepo == nil {
		return
	}
	if err := s.eventRepo.AppendRunEvent(context.Background(), store.RunEventData{
		RunID:  s.runID,
		Action: store.ActionStart,
		Total:  len(s.state.Questions),
	}); err != nil {
		s.log.Warn("journal run start", zap.Error(err))
	}
}

func (s *QuizScreen) recordAnswer(q qz.Question, index, chosen int) {
	timeMs := int(time.Since(s.questionStart).Milliseconds())
	s.log.Debug("answer submitted",
		zap.String("run_id", s.runID),
		zap.Int("question", index),
		zap.Int("choice", chosen),
		zap.Bool("correct", s.state.LastAnswerCorrect),
		zap.Float64("feedback_random", s.state.FeedbackRandom),
	)
	if s.eventRepo == nil {
		return
	}
	if err := s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		RunID:         s.runID,
		QuestionIndex: index,
		QuestionText:  q.Text,
		ChosenIndex:   chosen,
		ChosenText:    q.Choices[chosen],
		CorrectIndex:  q.CorrectChoiceIndex,
		Correct:       s.state.LastAnswerCorrect,
		TimeMs:        timeMs,
	}); err != nil {
		s.log.Warn("journal answer", zap.Error(err))
	}
}

// endRun records the finished run and caches the review shown on the
// final region so re-renders stay identical.
func (s *QuizScreen) endRun() {
	s.log.Info("run finished",
		zap.String("run_id", s.runID),
		zap.Int("score", s.state.Score),
		zap.Int("total", len(s.state.Questions)),
	)
	if s.eventRepo == nil {
		return
	}
	ctx := context.Background()
	if err := s.eventRepo.AppendRunEvent(ctx, store.RunEventData{
		RunID:  s.runID,
		Action: store.ActionEnd,
		Score:  s.state.Score,
		Total:  len(s.state.Questions),
	}); err != nil {
		s.log.Warn("journal run end", zap.Error(err))
	}

	answers, err := s.eventRepo.RunAnswers(ctx, s.runID)
	if err != nil {
		s.log.Warn("load run answers", zap.Error(err))
	}
	best, err := s.eventRepo.BestRun(ctx)
	if err != nil {
		s.log.Warn("load best run", zap.Error(err))
	}
	s.review = reviewLines(answers, best)
}
