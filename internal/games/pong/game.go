// Package pong implements a local two-player Pong game.
// The left player uses Q/A, the right player O/L, and Space serves.
// Coordinates are normalized device coordinates: y in [-1, 1] and
// x in [-aspect, aspect].
package pong

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// On-screen messages
const (
	MsgGameOver = "GAMEOVER"
	MsgRestart  = "(press space to restart game)"
)

// Phase is the state of the game flow.
type Phase int

const (
	PhaseBeginGame   Phase = iota // Waiting for the first serve
	PhasePlaying                  // Ball in play
	PhaseAttackPause              // Ball parked at the serving paddle
	PhaseGoal                     // A paddle missed; scoring this frame
	PhaseOver                     // Someone reached match point
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBeginGame:
		return "BeginGame"
	case PhasePlaying:
		return "Playing"
	case PhaseAttackPause:
		return "AttackPause"
	case PhaseGoal:
		return "Goal"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Game is the Pong state machine. It owns the ball, both paddles, the
// score table and every text label.
type Game struct {
	cfg    config.PongConfig
	window Window
	rng    Rand
	phase  Phase
	tick   uint64

	ball  *Ball
	right *Paddle
	left  *Paddle

	leftName  string
	rightName string
	scores    map[string]int

	leftScore   *Label
	rightScore  *Label
	leftTag     *Label
	rightTag    *Label
	msgGameOver *Label
	msgRestart  *Label

	objects []Drawable
}

// New creates a game between two players. Names must be distinct, see
// ParsePlayers. The window is queried every frame for its aspect.
func New(leftName, rightName string, cfg config.PongConfig, window Window, rng Rand, theme Theme) *Game {
	g := &Game{
		cfg:       cfg,
		window:    window,
		rng:       rng,
		leftName:  leftName,
		rightName: rightName,
		scores:    map[string]int{leftName: 0, rightName: 0},
	}

	geo := cfg.Geometry
	aspect := window.Aspect()
	g.ball = NewBall(0, 0, geo.BallWidth, mgl32.Vec2{cfg.Physics.BallSpeed, 0}, cfg.Physics.Perturbation, rng, theme.Ball)
	g.right = NewPaddle(geo.PaddleInset*aspect, 0, geo.PaddleWidth, geo.PaddleHeight, cfg.Physics.PaddleSpeed, geo.PaddleInset, theme.Paddle)
	g.left = NewPaddle(-geo.PaddleInset*aspect, 0, geo.PaddleWidth, geo.PaddleHeight, cfg.Physics.PaddleSpeed, geo.PaddleInset, theme.Paddle)

	g.leftScore = NewLabel("0", mgl32.Vec2{-0.75, 0.8}, theme.Text)
	g.rightScore = NewLabel("0", mgl32.Vec2{0.75, 0.8}, theme.Text)
	g.leftTag = NewLabel(leftName, mgl32.Vec2{-0.75, 0.92}, theme.Text)
	g.rightTag = NewLabel(rightName, mgl32.Vec2{0.75, 0.92}, theme.Text)
	g.msgGameOver = NewLabel("", mgl32.Vec2{0, 0.2}, theme.Text)
	g.msgRestart = NewLabel("", mgl32.Vec2{0, -0.15}, theme.Text)

	g.objects = []Drawable{
		g.ball,
		g.right,
		g.left,
		g.leftScore,
		g.rightScore,
		g.leftTag,
		g.rightTag,
		g.msgGameOver,
		g.msgRestart,
	}
	return g
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the score of the named player.
func (g *Game) Score(name string) int {
	return g.scores[name]
}

// Update advances the game by one frame.
func (g *Game) Update(in core.InputFrame) {
	g.tick++

	switch g.phase {
	case PhaseBeginGame:
		g.begin(in)
	case PhasePlaying:
		g.playing(in)
	case PhaseAttackPause:
		g.attack(in)
	case PhaseGoal:
		g.goal(in)
	case PhaseOver:
		g.over(in)
	}
}

// Draw fans out to every drawable object.
func (g *Game) Draw(s Surface) {
	for _, o := range g.objects {
		o.Draw(s)
	}
}

// Retune applies a reloaded config. Speeds and match point change at once;
// geometry changes are ignored until the process restarts.
func (g *Game) Retune(cfg config.PongConfig) {
	g.cfg.Physics = cfg.Physics
	g.cfg.Gameplay = cfg.Gameplay

	g.left.speed = cfg.Physics.PaddleSpeed
	g.right.speed = cfg.Physics.PaddleSpeed
	g.ball.spin = cfg.Physics.Perturbation
}

// begin waits for the first serve, launching toward a random side.
func (g *Game) begin(in core.InputFrame) {
	g.movePaddles(in)
	if !in.Has(core.ActionServe) {
		return
	}

	speed := g.cfg.Physics.BallSpeed
	if v := g.rng.Float32() * 2; v > 1 {
		g.ball.ResetWithVelocity(0, 0, mgl32.Vec2{speed, 0})
	} else {
		g.ball.ResetWithVelocity(0, 0, mgl32.Vec2{-speed, 0})
	}
	g.ball.Integrate()
	g.phase = PhasePlaying
}

// playing runs the rally until the ball passes a paddle.
func (g *Game) playing(in core.InputFrame) {
	g.ball.ResolveCollision(g.right, g.left)
	g.ball.Integrate()
	g.movePaddles(in)

	ballX, _ := g.ball.Pos()
	rightX, _ := g.right.Pos()
	leftX, _ := g.left.Pos()
	if rightX < ballX || ballX < leftX {
		g.phase = PhaseGoal
	}
}

// goal credits the player on the side opposite the ball.
func (g *Game) goal(in core.InputFrame) {
	g.movePaddles(in)

	ballX, _ := g.ball.Pos()
	switch {
	case ballX < 0:
		g.scores[g.rightName]++
		g.rightScore.Update(strconv.Itoa(g.scores[g.rightName]))
	case ballX > 0:
		g.scores[g.leftName]++
		g.leftScore.Update(strconv.Itoa(g.scores[g.leftName]))
	}

	matchPoint := g.cfg.Gameplay.MatchPoint
	if g.scores[g.leftName] < matchPoint && g.scores[g.rightName] < matchPoint {
		g.phase = PhaseAttackPause
	} else {
		g.phase = PhaseOver
	}
}

// attack parks the ball in front of the paddle that conceded and serves
// it back into the field on request.
func (g *Game) attack(in core.InputFrame) {
	g.movePaddles(in)

	dx := g.cfg.Geometry.ServeOffset
	speed := g.cfg.Physics.BallSpeed
	ballX, _ := g.ball.Pos()

	switch {
	case ballX < 0:
		px, py := g.left.Pos()
		g.ball.ResetPosition(px+dx, py)
		if in.Has(core.ActionServe) {
			g.ball.ResetWithVelocity(px+dx, py, mgl32.Vec2{speed, 0})
			g.phase = PhasePlaying
		}
	case ballX > 0:
		px, py := g.right.Pos()
		g.ball.ResetPosition(px-dx, py)
		if in.Has(core.ActionServe) {
			g.ball.ResetWithVelocity(px-dx, py, mgl32.Vec2{-speed, 0})
			g.phase = PhasePlaying
		}
	}
}

// over shows the result until someone asks for a new match.
func (g *Game) over(in core.InputFrame) {
	g.msgGameOver.Update(MsgGameOver)
	g.msgRestart.Update(MsgRestart)
	g.ball.ResetPosition(0, 0)

	if !in.Has(core.ActionServe) {
		return
	}

	g.msgGameOver.Update("")
	g.msgRestart.Update("")
	g.phase = PhaseBeginGame
	for name := range g.scores {
		g.scores[name] = 0
	}
	g.rightScore.Update(strconv.Itoa(g.scores[g.rightName]))
	g.leftScore.Update(strconv.Itoa(g.scores[g.leftName]))
}

// movePaddles applies both players' input and re-pins the paddles to the
// current aspect.
func (g *Game) movePaddles(in core.InputFrame) {
	g.right.Move(in.Has(core.ActionRightUp), in.Has(core.ActionRightDown))
	g.left.Move(in.Has(core.ActionLeftUp), in.Has(core.ActionLeftDown))

	aspect := g.window.Aspect()
	g.right.Repin(aspect)
	g.left.Repin(aspect)
}
