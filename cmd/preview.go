package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/config"
	"github.com/abhisek/quizbox/internal/quiz"
	quizscreen "github.com/abhisek/quizbox/internal/screens/quiz"
	"github.com/abhisek/quizbox/internal/view"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render one quiz route to stdout (no TUI, no journal)",
	Long: `Drive the quiz to a route and print the region the renderer fills.

Useful for checking a question bank's wording and the feedback texts
without playing through the whole quiz.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("route", "question", "Route: start, question, answer-feedback or final-feedback")
	previewCmd.Flags().Int("question", 0, "Zero-based index of the question to show")
	previewCmd.Flags().Int("answer", 0, "Zero-based choice submitted for answer-feedback")
	previewCmd.Flags().Bool("plain", false, "Strip terminal styling")
}

func runPreview(cmd *cobra.Command, args []string) error {
	routeVal, _ := cmd.Flags().GetString("route")
	index, _ := cmd.Flags().GetInt("question")
	answer, _ := cmd.Flags().GetInt("answer")
	plain, _ := cmd.Flags().GetBool("plain")

	route, err := quiz.ParseRoute(routeVal)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	state, err := newState(cfg)
	if err != nil {
		return err
	}

	if err := driveTo(state, route, index, answer); err != nil {
		return err
	}

	l := view.NewLayout(quizscreen.StartMarkup(len(state.Questions)))
	if err := (&view.Renderer{}).Render(state, l.Regions()); err != nil {
		return err
	}
	return writePreview(cmd.OutOrStdout(), l.Visible(), plain)
}

// driveTo moves a fresh state to route through the same operations the
// TUI uses. Every question before index is answered correctly.
func driveTo(s *quiz.State, route quiz.Route, index, answer int) error {
	if index < 0 || index >= len(s.Questions) {
		return fmt.Errorf("question %d out of range [0, %d)", index, len(s.Questions))
	}
	if route == quiz.RouteStart {
		return nil
	}

	s.SetRoute(quiz.RouteQuestion)
	last := index
	if route == quiz.RouteFinalFeedback {
		last = len(s.Questions) - 1
	}
	for s.CurrentQuestionIndex < last {
		q, _ := s.CurrentQuestion()
		if err := s.AnswerQuestion(q.CorrectChoiceIndex); err != nil {
			return err
		}
		s.Advance()
	}

	switch route {
	case quiz.RouteQuestion:
		return nil
	case quiz.RouteAnswerFeedback:
		return s.AnswerQuestion(answer)
	default:
		if err := s.AnswerQuestion(answer); err != nil {
			return err
		}
		s.Advance()
		return nil
	}
}

func writePreview(w io.Writer, p *view.Pane, plain bool) error {
	if p == nil {
		return view.ErrMissingRegion
	}
	out := p.View()
	if plain {
		out = ansi.Strip(out)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
