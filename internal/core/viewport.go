package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2

// Viewport maps normalized device coordinates onto a grid of terminal cells.
// x spans [-Aspect, Aspect] left to right, y spans [-1, 1] bottom to top.
type Viewport struct {
	cols int
	rows int
}

// NewViewport creates a viewport covering cols x rows cells.
func NewViewport(cols, rows int) *Viewport {
	v := &Viewport{}
	v.Resize(cols, rows)
	return v
}

// Resize updates the cell grid. Takes effect on the next Aspect or projection call.
func (v *Viewport) Resize(cols, rows int) {
	v.cols = max(cols, 0)
	v.rows = max(rows, 0)
}

// Size returns the grid dimensions in cells.
func (v *Viewport) Size() (cols, rows int) {
	return v.cols, v.rows
}

// Aspect returns the viewport width divided by its height, correcting for
// cells being taller than they are wide.
func (v *Viewport) Aspect() float32 {
	if v.rows == 0 || v.cols == 0 {
		return 1
	}
	return float32(v.cols) / float32(v.rows*CellAspect)
}

// ToCell projects a point in device coordinates to fractional cell coordinates.
func (v *Viewport) ToCell(p mgl32.Vec2) (cx, cy float32) {
	cx = (p.X()/v.Aspect() + 1) / 2 * float32(v.cols)
	cy = (1 - p.Y()) / 2 * float32(v.rows)
	return cx, cy
}

// CellRect returns the cells covered by b. Any box inside the viewport covers
// at least one cell.
func (v *Viewport) CellRect(b Box) Rect {
	left, top := v.ToCell(mgl32.Vec2{b.Left(), b.Top()})
	right, bottom := v.ToCell(mgl32.Vec2{b.Right(), b.Bottom()})

	x0, x1 := round(left), round(right)
	y0, y1 := round(top), round(bottom)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

func round(f float32) int {
	return int(math.Round(float64(f)))
}
