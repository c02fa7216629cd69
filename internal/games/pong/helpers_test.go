package pong

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

type fixedRand struct{ v float32 }

func (r fixedRand) Float32() float32 { return r.v }

type fixedWindow struct{ aspect float32 }

func (w *fixedWindow) Aspect() float32 { return w.aspect }

type textCall struct {
	at    mgl32.Vec2
	text  string
	width int
}

type recordingSurface struct {
	boxes []core.Box
	texts []textCall
}

func (s *recordingSurface) FillBox(b core.Box, _ rune, _ core.Color) {
	s.boxes = append(s.boxes, b)
}

func (s *recordingSurface) DrawText(at mgl32.Vec2, text string, width int, _ core.Color) {
	s.texts = append(s.texts, textCall{at: at, text: text, width: width})
}

func newTestGame(rng Rand) *Game {
	return New("alice", "bob", config.DefaultPongConfig(), &fixedWindow{aspect: 1}, rng, DefaultTheme())
}

var (
	noInput    = core.NewInputFrame()
	serveInput = core.FrameOf(core.ActionServe)
)

// scoreOn puts the ball past one paddle mid-rally and runs the frames needed
// for the goal to be credited. The ball is kept clear of the paddle's
// vertical range so it cannot be returned.
func scoreOn(g *Game, right bool) {
	g.phase = PhasePlaying
	if right {
		g.ball.ResetWithVelocity(0.95, 0.5, mgl32.Vec2{0.02, 0})
	} else {
		g.ball.ResetWithVelocity(-0.95, 0.5, mgl32.Vec2{-0.02, 0})
	}
	g.Update(noInput) // Playing -> Goal
	g.Update(noInput) // Goal -> AttackPause or Over
}
