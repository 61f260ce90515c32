package view

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

var (
	// ErrUnknownRoute is returned when the state carries a route with no renderer.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrMissingRegion is returned when a region or sub-region is absent.
	ErrMissingRegion = errors.New("missing region")
)

// Header texts for the answer-feedback region.
const (
	HeaderCorrect   = "correct"
	HeaderIncorrect = "Wrooonnnngggg!"
)

// Button labels.
const (
	LabelNext    = "Next"
	LabelResults = "How did I do?"
)

// NoSelection marks a choice list with no highlighted entry.
const NoSelection = -1

// Renderer draws a quiz.State into a set of regions.
type Renderer struct {
	// Review optionally supplies the answer review lines for the final
	// region. Nil leaves the review empty.
	Review func() []string
}

// Render hides every region, fills the one for the current route and
// shows it. Rendering the same state twice yields the same output.
func (r *Renderer) Render(s *quiz.State, regions Regions) error {
	for _, reg := range regions {
		if reg != nil {
			reg.Hide()
		}
	}

	region, ok := regions[s.Route]
	if !ok || region == nil {
		if !s.Route.Valid() {
			return fmt.Errorf("render %s: %w", s.Route, ErrUnknownRoute)
		}
		return fmt.Errorf("render %s: %w", s.Route, ErrMissingRegion)
	}

	var err error
	switch s.Route {
	case quiz.RouteStart:
		// Start content is pre-rendered.
	case quiz.RouteQuestion:
		err = r.renderQuestion(s, region)
	case quiz.RouteAnswerFeedback:
		err = r.renderAnswerFeedback(s, region)
	case quiz.RouteFinalFeedback:
		err = r.renderFinalFeedback(s, region)
	default:
		return fmt.Errorf("render %s: %w", s.Route, ErrUnknownRoute)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", s.Route, err)
	}

	region.Show()
	return nil
}

func (r *Renderer) renderQuestion(s *quiz.State, region Region) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return quiz.ErrNoCurrentQuestion
	}
	count, err := find(region, SelQuestionCount)
	if err != nil {
		return err
	}
	text, err := find(region, SelQuestionText)
	if err != nil {
		return err
	}
	choices, err := find(region, SelChoices)
	if err != nil {
		return err
	}

	count.SetText(s.Progress())
	text.SetText(q.Text)
	choices.SetMarkup(ChoicesMarkup(q, NoSelection))
	return nil
}

func (r *Renderer) renderAnswerFeedback(s *quiz.State, region Region) error {
	header, err := find(region, SelFeedbackHeader)
	if err != nil {
		return err
	}
	text, err := find(region, SelFeedbackText)
	if err != nil {
		return err
	}
	next, err := find(region, SelSeeNext)
	if err != nil {
		return err
	}

	if s.LastAnswerCorrect {
		header.SetMarkup(theme.Correct.Render(HeaderCorrect))
	} else {
		header.SetMarkup(theme.Incorrect.Render(HeaderIncorrect))
	}
	text.SetText(s.FeedbackText())
	next.SetMarkup(buttonMarkup(NextLabel(s)))
	return nil
}

func (r *Renderer) renderFinalFeedback(s *quiz.State, region Region) error {
	results, err := find(region, SelResultsText)
	if err != nil {
		return err
	}
	results.SetText(s.Result())

	review := region.Find(SelReview)
	if review == nil {
		return nil
	}
	var lines []string
	if r.Review != nil {
		lines = r.Review()
	}
	review.SetMarkup(lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(lines, "\n")))
	return nil
}

// NextLabel is the label of the button leaving answer-feedback.
func NextLabel(s *quiz.State) string {
	if s.CurrentQuestionIndex < len(s.Questions)-1 {
		return LabelNext
	}
	return LabelResults
}

// ChoicesMarkup renders one numbered line per choice in original order.
// The line for index selected is highlighted.
func ChoicesMarkup(q quiz.Question, selected int) string {
	lines := make([]string, 0, len(q.Choices))
	for i, c := range q.Choices {
		prefix := "( )"
		style := theme.Unselected
		if i == selected {
			prefix = "(•)"
			style = theme.Selected
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %d) %s", prefix, i+1, c)))
	}
	return strings.Join(lines, "\n")
}

// Select re-renders the choice list of the question region with index i
// highlighted. It is the terminal stand-in for a checked radio button.
func Select(s *quiz.State, regions Regions, i int) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return quiz.ErrNoCurrentQuestion
	}
	region, ok := regions[quiz.RouteQuestion]
	if !ok || region == nil {
		return ErrMissingRegion
	}
	choices, err := find(region, SelChoices)
	if err != nil {
		return err
	}
	choices.SetMarkup(ChoicesMarkup(q, i))
	return nil
}

func buttonMarkup(label string) string {
	return theme.ButtonActive.Render("▸ " + label)
}

func find(region Region, selector string) (Region, error) {
	sub := region.Find(selector)
	if sub == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingRegion, selector)
	}
	return sub, nil
}
