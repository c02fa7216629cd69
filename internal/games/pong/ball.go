package pong

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball is the square ball. Its width doubles as its hit box side.
type Ball struct {
	pos   mgl32.Vec2 // center
	width float32
	speed mgl32.Vec2 // displacement per tick
	spin  float32    // max |Δspeed.y| added by a moving paddle
	rng   Rand
	color core.Color
}

// NewBall creates a ball centered at (x, y).
func NewBall(x, y, width float32, speed mgl32.Vec2, spin float32, rng Rand, color core.Color) *Ball {
	return &Ball{
		pos:   mgl32.Vec2{x, y},
		width: width,
		speed: speed,
		spin:  spin,
		rng:   rng,
		color: color,
	}
}

// Integrate advances the ball one tick and bounces it off the top and
// bottom walls. The bounce only flips velocity; position is not clamped.
func (b *Ball) Integrate() {
	b.pos = b.pos.Add(b.speed)

	half := b.width / 2
	if b.pos.Y()+half > 1 || b.pos.Y()-half < -1 {
		b.speed[1] = -b.speed.Y()
	}
}

// ResolveCollision bounces the ball off whichever paddles it overlaps.
// Direction is only reversed when the ball is still heading into the
// paddle, so a ball that stays inside a hit box for several frames is
// not bounced back and forth.
func (b *Ball) ResolveCollision(right, left *Paddle) {
	box := b.Bounds()
	top, bottom := box.Top(), box.Bottom()

	lb := left.Bounds()
	if box.Left() < lb.Right() && (lb.SpansY(top) || lb.SpansY(bottom)) {
		if left.IsMoving() {
			b.perturb()
		}
		if b.speed.X() < 0 {
			b.speed[0] = -b.speed.X()
		}
	}

	rb := right.Bounds()
	if rb.Left() < box.Right() && (rb.SpansY(top) || rb.SpansY(bottom)) {
		if right.IsMoving() {
			b.perturb()
		}
		if b.speed.X() > 0 {
			b.speed[0] = -b.speed.X()
		}
	}
}

// perturb adds a uniform random draw in [-spin, spin] to the vertical speed.
func (b *Ball) perturb() {
	b.speed[1] += -b.spin + 2*b.spin*b.rng.Float32()
}

// ResetWithVelocity places the ball and overwrites its velocity.
func (b *Ball) ResetWithVelocity(x, y float32, speed mgl32.Vec2) {
	b.pos = mgl32.Vec2{x, y}
	b.speed = speed
}

// ResetPosition places the ball, keeping its velocity.
func (b *Ball) ResetPosition(x, y float32) {
	b.pos = mgl32.Vec2{x, y}
}

// Pos returns the ball's center.
func (b *Ball) Pos() (x, y float32) {
	return b.pos.X(), b.pos.Y()
}

// Speed returns the ball's velocity.
func (b *Ball) Speed() mgl32.Vec2 {
	return b.speed
}

// Width returns the ball's side length.
func (b *Ball) Width() float32 {
	return b.width
}

// Bounds returns the ball's hit box.
func (b *Ball) Bounds() core.Box {
	return core.Box{Center: b.pos, Size: mgl32.Vec2{b.width, b.width}}
}

// Draw paints the ball.
func (b *Ball) Draw(s Surface) {
	s.FillBox(b.Bounds(), BallChar, b.color)
}
