package history

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/store"
)

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open("file:history_test_" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func seedRun(t *testing.T, repo store.EventRepo, runID string, correct ...bool) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.AppendRunEvent(ctx, store.RunEventData{RunID: runID, Action: store.ActionStart, Total: len(correct)}))
	score := 0
	for i, c := range correct {
		if c {
			score++
		}
		require.NoError(t, repo.AppendAnswerEvent(ctx, store.AnswerEventData{
			RunID:         runID,
			QuestionIndex: i,
			QuestionText:  "q",
			ChosenText:    "1",
			Correct:       c,
			TimeMs:        1500,
		}))
	}
	require.NoError(t, repo.AppendRunEvent(ctx, store.RunEventData{RunID: runID, Action: store.ActionEnd, Score: score, Total: len(correct)}))
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	msg := s.Init()()
	_, cmd := s.Update(msg)
	assert.Nil(t, cmd)
}

func TestEmptyHistory(t *testing.T) {
	s := New(openRepo(t))
	assert.Contains(t, s.View(80, 20), "Loading runs...")

	load(t, s)
	assert.Contains(t, s.View(80, 20), "No finished runs yet.")
}

func TestListsRuns(t *testing.T) {
	repo := openRepo(t)
	seedRun(t, repo, "run-a", true, false)
	seedRun(t, repo, "run-b", true, true)

	s := New(repo)
	load(t, s)
	require.Len(t, s.runs, 2)
	assert.Len(t, s.answers["run-a"], 2)

	v := s.View(80, 20)
	assert.Contains(t, v, "1/2 correct")
	assert.Contains(t, v, "2/2 correct")
}

func TestNavigateAndExpand(t *testing.T) {
	repo := openRepo(t)
	seedRun(t, repo, "run-a", true)
	seedRun(t, repo, "run-b", false)

	s := New(repo)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, s.expanded[1])
	assert.Contains(t, s.View(80, 20), "Q1 picked 1 (1.5s)")

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)
}

func TestEscPops(t *testing.T) {
	s := New(openRepo(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestLoadError(t *testing.T) {
	s := New(openRepo(t))
	s.Update(historyLoadedMsg{Err: assert.AnError})
	assert.Contains(t, s.View(80, 20), assert.AnError.Error())
}
