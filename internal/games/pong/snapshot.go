package pong

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is a read-only copy of the game state, taken after Update.
// The platform uses it to log phase changes and record finished matches.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	LeftName    string
	RightName   string
	LeftScore   int
	RightScore  int
	Ball        mgl32.Vec2
	BallSpeed   mgl32.Vec2
	LeftPaddle  mgl32.Vec2
	RightPaddle mgl32.Vec2
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		LeftName:    g.leftName,
		RightName:   g.rightName,
		LeftScore:   g.scores[g.leftName],
		RightScore:  g.scores[g.rightName],
		Ball:        g.ball.pos,
		BallSpeed:   g.ball.speed,
		LeftPaddle:  g.left.pos,
		RightPaddle: g.right.pos,
	}
}

// Winner returns the name of the player with the higher score, or "" on a tie.
func (s Snapshot) Winner() string {
	switch {
	case s.LeftScore > s.RightScore:
		return s.LeftName
	case s.RightScore > s.LeftScore:
		return s.RightName
	default:
		return ""
	}
}
