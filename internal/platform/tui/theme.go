package tui

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// DetectTheme picks the game palette from the terminal background behind out.
// Non-terminal writers get the dark palette.
func DetectTheme(out io.Writer) pong.Theme {
	o := termenv.NewOutput(out)
	if o.HasDarkBackground() {
		return pong.DefaultTheme()
	}
	return pong.LightTheme()
}
