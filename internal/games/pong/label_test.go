package pong

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestLabelRelayoutOnlyOnChange(t *testing.T) {
	l := NewLabel("0", mgl32.Vec2{-0.75, 0.8}, core.ColorGray)
	s := &recordingSurface{}

	l.Draw(s)
	l.Draw(s)
	assert.Equal(t, 1, l.layouts)

	l.Update("0")
	l.Draw(s)
	assert.Equal(t, 1, l.layouts, "same text must not relayout")

	l.Update("10")
	l.Draw(s)
	assert.Equal(t, 2, l.layouts)
	assert.Equal(t, 2, s.texts[len(s.texts)-1].width)
}

func TestLabelWideText(t *testing.T) {
	l := NewLabel("日本", mgl32.Vec2{0, 0}, core.ColorGray)
	s := &recordingSurface{}

	l.Draw(s)

	if assert.Len(t, s.texts, 1) {
		assert.Equal(t, 4, s.texts[0].width)
		assert.Equal(t, "日本", s.texts[0].text)
	}
}

func TestLabelEmptyDrawsNothing(t *testing.T) {
	l := NewLabel("", mgl32.Vec2{0, 0.2}, core.ColorGray)
	s := &recordingSurface{}

	l.Draw(s)
	assert.Empty(t, s.texts)

	l.Update(MsgGameOver)
	l.Draw(s)
	if assert.Len(t, s.texts, 1) {
		assert.Equal(t, mgl32.Vec2{0, 0.2}, s.texts[0].at)
		assert.Equal(t, len(MsgGameOver), s.texts[0].width)
	}
}
