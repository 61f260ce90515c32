package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/quiz"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	quizscreen "github.com/abhisek/quizbox/internal/screens/quiz"
	"github.com/abhisek/quizbox/internal/store"
	"github.com/abhisek/quizbox/internal/ui/layout"
)

// Options holds the dependencies for the app.
type Options struct {
	State     *quiz.State
	EventRepo store.EventRepo // nil disables the journal
	Logger    *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// NewAppModel creates an AppModel showing the quiz screen.
func NewAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(quizscreen.New(opts.State, opts.EventRepo, opts.Logger)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title, status string
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	opts.Logger = log

	p := tea.NewProgram(NewAppModel(opts))
	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}
