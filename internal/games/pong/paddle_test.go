package pong

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestPaddleStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewPaddle(-0.9, 0, 0.1, 0.3, 0.015, 0.9, core.ColorWhite)
	top, bottom := float32(1-0.15), float32(-1+0.15)

	for i := 0; i < 5000; i++ {
		p.Move(rng.Intn(2) == 0, rng.Intn(2) == 0)
		_, y := p.Pos()
		if y > top+1e-6 || y < bottom-1e-6 {
			t.Fatalf("step %d: y=%v outside [%v, %v]", i, y, bottom, top)
		}
	}
}

func TestPaddleReachesEdges(t *testing.T) {
	p := NewPaddle(0.9, 0, 0.1, 0.3, 0.015, 0.9, core.ColorWhite)

	for i := 0; i < 200; i++ {
		p.Move(true, false)
	}
	_, y := p.Pos()
	assert.InDelta(t, 0.85, y, 1e-6)
	assert.False(t, p.IsMoving(), "paddle at the top edge should not report movement")

	for i := 0; i < 200; i++ {
		p.Move(false, true)
	}
	_, y = p.Pos()
	assert.InDelta(t, -0.85, y, 1e-6)
}

func TestPaddleUpWinsOverDown(t *testing.T) {
	p := NewPaddle(-0.9, 0, 0.1, 0.3, 0.015, 0.9, core.ColorWhite)

	p.Move(true, true)

	_, y := p.Pos()
	assert.InDelta(t, 0.015, y, 1e-6)
	assert.True(t, p.IsMoving())
}

func TestPaddleIdle(t *testing.T) {
	p := NewPaddle(-0.9, 0, 0.1, 0.3, 0.015, 0.9, core.ColorWhite)

	p.Move(true, false)
	assert.True(t, p.IsMoving())

	p.Move(false, false)
	assert.False(t, p.IsMoving())
}

func TestPaddleRepin(t *testing.T) {
	tests := []struct {
		name   string
		x      float32
		aspect float32
		want   float32
	}{
		{"right widens", 0.9, 1.5, 0.9 * 1.5},
		{"right narrows", 1.35, 0.5, 0.9 * 0.5},
		{"left widens", -0.9, 2, -0.9 * 2},
		{"left narrows", -1.8, 1, -0.9},
		{"center goes left", 0, 1, -0.9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(tc.x, 0, 0.1, 0.3, 0.015, 0.9, core.ColorWhite)
			p.Repin(tc.aspect)
			x, _ := p.Pos()
			assert.InDelta(t, tc.want, x, 1e-6)
		})
	}
}

func TestPaddleDraw(t *testing.T) {
	p := NewPaddle(-0.9, 0.2, 0.1, 0.3, 0.015, 0.9, core.ColorWhite)
	s := &recordingSurface{}

	p.Draw(s)

	if assert.Len(t, s.boxes, 1) {
		assert.Equal(t, p.Bounds(), s.boxes[0])
	}
	w, h := p.Size()
	assert.Equal(t, float32(0.1), w)
	assert.Equal(t, float32(0.3), h)
}
