package pong

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle is a player's bat. It moves vertically and stays pinned near the
// left or right viewport edge.
type Paddle struct {
	pos    mgl32.Vec2 // center
	size   mgl32.Vec2
	speed  float32
	inset  float32 // x = ±inset * aspect
	color  core.Color
	moving bool
}

// NewPaddle creates a paddle centered at (x, y). The sign of x picks its side.
func NewPaddle(x, y, width, height, speed, inset float32, color core.Color) *Paddle {
	return &Paddle{
		pos:   mgl32.Vec2{x, y},
		size:  mgl32.Vec2{width, height},
		speed: speed,
		inset: inset,
		color: color,
	}
}

// Move applies one frame of directional input. Up wins when both keys are
// held. Moving never carries the paddle past the top or bottom edge.
func (p *Paddle) Move(up, down bool) {
	top := 1 - p.size.Y()/2
	bottom := -1 + p.size.Y()/2

	switch {
	case up && p.pos.Y() < top:
		p.pos[1] = min(p.pos.Y()+p.speed, top)
		p.moving = true
	case down && p.pos.Y() > bottom:
		p.pos[1] = max(p.pos.Y()-p.speed, bottom)
		p.moving = true
	default:
		p.moving = false
	}
}

// Repin keeps the paddle flush with its viewport edge after an aspect change.
func (p *Paddle) Repin(aspect float32) {
	if p.pos.X() > 0 {
		p.pos[0] = p.inset * aspect
	} else {
		p.pos[0] = -p.inset * aspect
	}
}

// IsMoving reports whether the latest Move changed the paddle's position.
func (p *Paddle) IsMoving() bool {
	return p.moving
}

// Pos returns the paddle's center.
func (p *Paddle) Pos() (x, y float32) {
	return p.pos.X(), p.pos.Y()
}

// Size returns the paddle's width and height.
func (p *Paddle) Size() (width, height float32) {
	return p.size.X(), p.size.Y()
}

// Bounds returns the paddle's hit box.
func (p *Paddle) Bounds() core.Box {
	return core.Box{Center: p.pos, Size: p.size}
}

// Draw paints the paddle.
func (p *Paddle) Draw(s Surface) {
	s.FillBox(p.Bounds(), PaddleChar, p.color)
}
