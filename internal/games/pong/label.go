package pong

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Label is a line of text anchored at a point in device coordinates.
// Layout is recomputed on the next Draw only when the content changed.
type Label struct {
	at      mgl32.Vec2
	color   core.Color
	text    string
	width   int
	dirty   bool
	layouts int // times layout has been computed
}

// NewLabel creates a label centered on at.
func NewLabel(text string, at mgl32.Vec2, color core.Color) *Label {
	return &Label{at: at, color: color, text: text, dirty: true}
}

// Update replaces the displayed text.
func (l *Label) Update(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.dirty = true
}

// Text returns the current content.
func (l *Label) Text() string {
	return l.text
}

// Draw lays out the text if needed and draws it.
func (l *Label) Draw(s Surface) {
	if l.dirty {
		l.width = runewidth.StringWidth(l.text)
		l.dirty = false
		l.layouts++
	}
	if l.text == "" {
		return
	}
	s.DrawText(l.at, l.text, l.width, l.color)
}
