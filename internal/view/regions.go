package view

import "github.com/abhisek/quizbox/internal/quiz"

// Selectors of the sub-regions the renderer writes into.
const (
	SelQuestionCount  = ".question-count"
	SelQuestionText   = ".question-text"
	SelChoices        = ".choices"
	SelFeedbackHeader = ".feedback-header"
	SelFeedbackText   = ".feedback-text"
	SelSeeNext        = ".see-next"
	SelResultsText    = ".results-text"
	SelReview         = ".review"
	SelRestart        = ".restart-game"
)

// Regions maps every route to its display region.
type Regions map[quiz.Route]Region

// Layout is the standard pane tree for the four routes.
type Layout struct {
	Start          *Pane
	Question       *Pane
	AnswerFeedback *Pane
	FinalFeedback  *Pane
}

// NewLayout builds the pane tree. startMarkup is the pre-rendered content
// of the start region; the renderer never writes to it.
func NewLayout(startMarkup string) *Layout {
	return &Layout{
		Start: StaticPane("[data-page=start]", startMarkup),
		Question: NewPane("[data-page=question]",
			NewPane(SelQuestionCount),
			NewPane(SelQuestionText),
			NewPane(SelChoices),
		),
		AnswerFeedback: NewPane("[data-page=answer-feedback]",
			NewPane(SelFeedbackHeader),
			NewPane(SelFeedbackText),
			NewPane(SelSeeNext),
		),
		FinalFeedback: NewPane("[data-page=final-feedback]",
			NewPane(SelResultsText),
			NewPane(SelReview),
			StaticPane(SelRestart, buttonMarkup("Play again")),
		),
	}
}

// Regions returns the route-to-region mapping for the layout.
func (l *Layout) Regions() Regions {
	return Regions{
		quiz.RouteStart:          l.Start,
		quiz.RouteQuestion:       l.Question,
		quiz.RouteAnswerFeedback: l.AnswerFeedback,
		quiz.RouteFinalFeedback:  l.FinalFeedback,
	}
}

// Visible returns the single visible pane, or nil if none is shown.
func (l *Layout) Visible() *Pane {
	for _, p := range []*Pane{l.Start, l.Question, l.AnswerFeedback, l.FinalFeedback} {
		if !p.Hidden() {
			return p
		}
	}
	return nil
}
