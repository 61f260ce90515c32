package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaneFindNested(t *testing.T) {
	root := NewPane("root", NewPane("a", NewPane("b")))
	require.NotNil(t, root.Find("b"))
	assert.Nil(t, root.Find("missing"))
}

func TestPaneContentReplaces(t *testing.T) {
	p := NewPane("p")
	p.SetMarkup("\x1b[1mbold\x1b[0m")
	assert.Equal(t, "bold", p.Text())

	p.SetText("plain")
	assert.Equal(t, "plain", p.Text())
	assert.Equal(t, "plain", p.Content())
}

func TestPaneViewSkipsHidden(t *testing.T) {
	a := StaticPane("a", "A")
	b := StaticPane("b", "B")
	root := NewPane("root", a, b)

	assert.Equal(t, "A\n\nB", root.View())
	b.Hide()
	assert.Equal(t, "A", root.View())
	root.Hide()
	assert.Equal(t, "", root.View())
	root.Show()
	assert.Equal(t, "A", root.View())
}
