package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/store"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

type historyLoadedMsg struct {
	Runs    []store.RunSummary
	Answers map[string][]store.AnswerEvent // runID → answers
	Err     error
}

// HistoryScreen lists the runs finished since the program started.
type HistoryScreen struct {
	eventRepo store.EventRepo
	runs      []store.RunSummary
	answers   map[string][]store.AnswerEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		runs, err := s.eventRepo.FinishedRuns(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		answers := make(map[string][]store.AnswerEvent, len(runs))
		for _, r := range runs {
			a, err := s.eventRepo.RunAnswers(ctx, r.RunID)
			if err != nil {
				return historyLoadedMsg{Err: err}
			}
			answers[r.RunID] = a
		}
		return historyLoadedMsg{Runs: runs, Answers: answers}
	}
}

func (s *HistoryScreen) Title() string {
	return "Runs"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading runs...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No finished runs yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, run := range s.runs {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %d/%d correct", prefix, run.Timestamp.Local().Format("15:04:05"), run.Score, run.Total)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if !s.expanded[i] {
			continue
		}
		for _, a := range s.answers[run.RunID] {
			color := theme.Error
			if a.Correct {
				color = theme.Success
			}
			detail := fmt.Sprintf("    Q%d picked %s (%.1fs)", a.QuestionIndex+1, a.ChosenText, float64(a.TimeMs)/1000)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(color).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
