// Package core provides fundamental types and utilities for the pong platform.
// It contains no Bubble Tea dependency to keep game logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl32"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Box is an axis-aligned bounding box in normalized device coordinates.
// Center-based like the game entities; y grows upwards.
type Box struct {
	Center mgl32.Vec2
	Size   mgl32.Vec2
}

// NewBox creates a box centered at (x, y).
func NewBox(x, y, w, h float32) Box {
	return Box{Center: mgl32.Vec2{x, y}, Size: mgl32.Vec2{w, h}}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float32 {
	return b.Center.X() - b.Size.X()/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float32 {
	return b.Center.X() + b.Size.X()/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float32 {
	return b.Center.Y() + b.Size.Y()/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float32 {
	return b.Center.Y() - b.Size.Y()/2
}

// SpansY reports whether y lies strictly between the bottom and top edges.
func (b Box) SpansY(y float32) bool {
	return b.Bottom() < y && y < b.Top()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
