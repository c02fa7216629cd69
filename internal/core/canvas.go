package core

import "github.com/go-gl/mathgl/mgl32"

// Canvas draws device-coordinate shapes and text onto a Screen.
type Canvas struct {
	screen *Screen
	view   *Viewport
}

// NewCanvas binds a screen to the viewport used to project onto it.
func NewCanvas(screen *Screen, view *Viewport) *Canvas {
	return &Canvas{screen: screen, view: view}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// FillBox fills every cell covered by b.
func (c *Canvas) FillBox(b Box, fill rune, col Color) {
	c.screen.DrawRect(c.view.CellRect(b), fill, col)
}

// DrawText draws text horizontally centered on at. width is the display
// width of text in cells.
func (c *Canvas) DrawText(at mgl32.Vec2, text string, width int, col Color) {
	cx, cy := c.view.ToCell(at)
	x := round(cx) - width/2
	_, rows := c.view.Size()
	y := Clamp(int(cy), 0, max(rows-1, 0))
	c.screen.DrawColoredText(x, y, text, col)
}
