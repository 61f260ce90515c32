package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizbox/internal/screen"
)

// stubScreen is a minimal screen that counts the messages it receives.
type stubScreen struct {
	title    string
	initRan  bool
	received int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.received++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushAndPop(t *testing.T) {
	quiz := &stubScreen{title: "quiz"}
	r := New(quiz)

	history := &stubScreen{title: "history"}
	r.Update(PushScreenMsg{Screen: history})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "history", r.Active().Title())
	assert.True(t, history.initRan)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "quiz", r.Active().Title())
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "quiz"})
	r.Pop()
	assert.Equal(t, 1, r.Depth())
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "splash"})
	r.Push(&stubScreen{title: "history"})

	quiz := &stubScreen{title: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: quiz})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "quiz", r.Active().Title())
	assert.True(t, quiz.initRan)
}

func TestUpdateForwardsToActive(t *testing.T) {
	bottom := &stubScreen{title: "bottom"}
	top := &stubScreen{title: "top"}
	r := New(bottom)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Equal(t, 1, top.received)
	assert.Zero(t, bottom.received)
	assert.Equal(t, "top", r.View(80, 24))
}
