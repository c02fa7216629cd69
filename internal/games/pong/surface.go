package pong

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '▓'
)

// Surface receives draw calls in device coordinates.
// core.Canvas is the terminal implementation.
type Surface interface {
	// FillBox paints every cell covered by b.
	FillBox(b core.Box, fill rune, c core.Color)

	// DrawText draws text centered on at; width is its display width in cells.
	DrawText(at mgl32.Vec2, text string, width int, c core.Color)
}

// Drawable is anything the game draws each frame.
type Drawable interface {
	Draw(s Surface)
}

// Window reports the current viewport aspect (width / height).
// It must reflect resizes before the next Update.
type Window interface {
	Aspect() float32
}

// Rand is the source of the game's random draws. *math/rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// Theme holds the colors used for each entity.
type Theme struct {
	Ball   core.Color
	Paddle core.Color
	Text   core.Color
}

// DefaultTheme suits dark terminal backgrounds.
func DefaultTheme() Theme {
	return Theme{
		Ball:   core.ColorBrightWhite,
		Paddle: core.ColorWhite,
		Text:   core.ColorGray,
	}
}

// LightTheme mirrors the dark-gray-on-light look for light backgrounds.
func LightTheme() Theme {
	return Theme{
		Ball:   core.ColorDarkGray,
		Paddle: core.ColorDarkGray,
		Text:   core.ColorDarkGray,
	}
}
