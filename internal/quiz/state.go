package quiz

import "fmt"

// State tracks one quiz session. It is owned by the UI loop and mutated
// only through the transition methods below.
type State struct {
	// Questions is the fixed question sequence (non-empty).
	Questions []Question

	// Praises is the feedback pool for correct answers.
	Praises []string

	// Admonishments is the feedback pool for wrong answers.
	Admonishments []string

	// Score counts correct answers, in [0, len(Questions)].
	Score int

	// CurrentQuestionIndex is in [0, len(Questions)]; it equals
	// len(Questions) only on RouteFinalFeedback.
	CurrentQuestionIndex int

	// Route is the active view.
	Route Route

	// LastAnswerCorrect is meaningful only on RouteAnswerFeedback.
	LastAnswerCorrect bool

	// FeedbackRandom is sampled on every answer and picks the feedback text.
	FeedbackRandom float64

	rand RandSource
}

// New creates a session at the start route. A nil src falls back to a
// time-seeded source.
func New(bank Bank, src RandSource) (*State, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewRandSource(0)
	}
	return &State{
		Questions:     bank.Questions,
		Praises:       bank.Praises,
		Admonishments: bank.Admonishments,
		Route:         RouteStart,
		rand:          src,
	}, nil
}

// SetRoute assigns the route unconditionally.
func (s *State) SetRoute(r Route) {
	s.Route = r
}

// Reset discards progress and returns to the start route.
func (s *State) Reset() {
	s.Score = 0
	s.CurrentQuestionIndex = 0
	s.LastAnswerCorrect = false
	s.FeedbackRandom = 0
	s.SetRoute(RouteStart)
}

// AnswerQuestion scores choice i against the current question, samples a
// feedback value and moves to RouteAnswerFeedback. State is left
// untouched when an error is returned.
func (s *State) AnswerQuestion(i int) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return fmt.Errorf("answer %d: %w", i, ErrNoCurrentQuestion)
	}
	if !q.ValidChoice(i) {
		return &InvalidAnswerIndexError{Index: i, Question: s.CurrentQuestionIndex, Choices: len(q.Choices)}
	}

	s.LastAnswerCorrect = q.IsCorrect(i)
	if s.LastAnswerCorrect {
		s.Score++
	}
	s.FeedbackRandom = s.rand.Float64()
	s.SetRoute(RouteAnswerFeedback)
	return nil
}

// Advance moves to the next question, or to RouteFinalFeedback after the
// last one. The index never exceeds len(Questions).
func (s *State) Advance() {
	if s.CurrentQuestionIndex < len(s.Questions) {
		s.CurrentQuestionIndex++
	}
	if s.CurrentQuestionIndex == len(s.Questions) {
		s.SetRoute(RouteFinalFeedback)
		return
	}
	s.SetRoute(RouteQuestion)
}

// CurrentQuestion returns the active question, false once the quiz is over.
func (s *State) CurrentQuestion() (Question, bool) {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentQuestionIndex], true
}

// IsLastQuestion reports whether the current question is the final one.
func (s *State) IsLastQuestion() bool {
	return s.CurrentQuestionIndex >= len(s.Questions)-1
}

// Progress returns the "n/total" label for the current question.
func (s *State) Progress() string {
	return fmt.Sprintf("%d/%d", s.CurrentQuestionIndex+1, len(s.Questions))
}

// FeedbackPool returns the pool matching the last answer's correctness.
func (s *State) FeedbackPool() []string {
	if s.LastAnswerCorrect {
		return s.Praises
	}
	return s.Admonishments
}

// FeedbackText is the feedback line selected by FeedbackRandom.
func (s *State) FeedbackText() string {
	return PickFeedback(s.FeedbackPool(), s.FeedbackRandom)
}

// Result is the final score sentence.
func (s *State) Result() string {
	return fmt.Sprintf("You got %d out of %d questions right.", s.Score, len(s.Questions))
}
