package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.Clear()
	s.DrawText(0, 0, "ab")
	s.SetColored(4, 1, '█', core.ColorWhite)

	out := RenderScreen(s)

	assert.Equal(t, "ab   \n    █", out)
}

func TestRenderScreenWideRune(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.Clear()
	s.DrawText(0, 0, "日x")

	out := RenderScreen(s)

	assert.Equal(t, "日x ", out)
	assert.Equal(t, 4, lipgloss.Width(out))
	assert.False(t, strings.ContainsRune(out, 0))
}
