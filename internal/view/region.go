package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Region is a display area the renderer writes into.
type Region interface {
	Hide()
	Show()
	SetText(text string)
	SetMarkup(markup string)
	// Find returns the descendant matching selector, or nil.
	Find(selector string) Region
}

// Pane is the in-memory Region used by the terminal UI. Content is either
// plain text or pre-styled markup; setting one replaces the other.
type Pane struct {
	selector string
	hidden   bool
	content  string
	markup   bool
	children []*Pane
}

var _ Region = (*Pane)(nil)

// NewPane creates a visible pane with the given children.
func NewPane(selector string, children ...*Pane) *Pane {
	return &Pane{selector: selector, children: children}
}

// StaticPane creates a pane pre-filled with markup.
func StaticPane(selector, markup string) *Pane {
	p := NewPane(selector)
	p.SetMarkup(markup)
	return p
}

func (p *Pane) Hide() { p.hidden = true }
func (p *Pane) Show() { p.hidden = false }

func (p *Pane) SetText(text string) {
	p.content = text
	p.markup = false
}

func (p *Pane) SetMarkup(markup string) {
	p.content = markup
	p.markup = true
}

// Find searches descendants depth-first.
func (p *Pane) Find(selector string) Region {
	if c := p.find(selector); c != nil {
		return c
	}
	return nil
}

func (p *Pane) find(selector string) *Pane {
	for _, c := range p.children {
		if c.selector == selector {
			return c
		}
		if d := c.find(selector); d != nil {
			return d
		}
	}
	return nil
}

// Selector returns the name the pane is found by.
func (p *Pane) Selector() string { return p.selector }

// Hidden reports whether the pane is hidden.
func (p *Pane) Hidden() bool { return p.hidden }

// Content returns the raw content, styled if it was set as markup.
func (p *Pane) Content() string { return p.content }

// Text returns the content with any styling removed.
func (p *Pane) Text() string {
	if p.markup {
		return ansi.Strip(p.content)
	}
	return p.content
}

// View renders the pane and its visible children, one block per line
// group. A hidden pane renders as the empty string.
func (p *Pane) View() string {
	if p.hidden {
		return ""
	}
	var blocks []string
	if p.content != "" {
		blocks = append(blocks, p.content)
	}
	for _, c := range p.children {
		if v := c.View(); v != "" {
			blocks = append(blocks, v)
		}
	}
	return strings.Join(blocks, "\n\n")
}
