package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var sections []string

	if s.state.Route == qz.RouteQuestion || s.state.Route == qz.RouteAnswerFeedback {
		done := s.state.CurrentQuestionIndex
		if s.state.Route == qz.RouteAnswerFeedback {
			done++
		}
		bar := components.NewProgressBar(done, len(s.state.Questions), min(width-8, 50))
		sections = append(sections, bar.View(), "")
	}

	if visible := s.layout.Visible(); visible != nil {
		sections = append(sections, theme.Card.Render(visible.View()))
	}

	if s.errMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Error: "+s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
