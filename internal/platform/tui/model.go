package tui

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// MsgPaused is drawn over the field while the game is paused.
const MsgPaused = "PAUSED"

// Recorder stores completed matches. *storage.Store satisfies it.
type Recorder interface {
	SaveMatch(m storage.MatchRecord) (storage.MatchRecord, error)
}

// Options configures a Pong session.
type Options struct {
	LeftName  string
	RightName string
	Game      config.PongConfig
	Runtime   core.RuntimeConfig
	Theme     pong.Theme
	Logger    *log.Logger // nil discards
	Recorder  Recorder    // nil disables match history
}

// configReloadedMsg carries a config that was reloaded from disk.
type configReloadedMsg struct {
	cfg config.PongConfig
}

// configErrorMsg reports a failed reload. The running config is kept.
type configErrorMsg struct {
	err error
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a local two-player Pong session.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	view     *core.Viewport
	canvas   *core.Canvas
	tracker  *core.Tracker
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	recorder Recorder
	config   core.RuntimeConfig
	now      func() time.Time

	lastPhase  pong.Phase
	matchStart time.Time
	paused     bool
	quitting   bool
}

// NewModel creates a session model. The footer takes one row, the rest of
// the terminal is the playing field.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rows := max(cfg.ScreenH-1, 0)
	view := core.NewViewport(cfg.ScreenW, rows)
	screen := core.NewScreen(cfg.ScreenW, rows)
	rng := rand.New(rand.NewSource(cfg.Seed))

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       pong.New(opts.LeftName, opts.RightName, opts.Game, view, rng, opts.Theme),
		screen:     screen,
		view:       view,
		canvas:     core.NewCanvas(screen, view),
		tracker:    core.NewTracker(cfg.TicksFor(opts.Game.Input.HoldMS), core.ActionServe),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		recorder:   opts.Recorder,
		config:     cfg,
		now:        time.Now,
		lastPhase:  pong.PhaseBeginGame,
		matchStart: time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("match started",
		"left", m.game.Snapshot().LeftName,
		"right", m.game.Snapshot().RightName,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configReloadedMsg:
		m.game.Retune(msg.cfg)
		m.tracker = core.NewTracker(m.config.TicksFor(msg.cfg.Input.HoldMS), core.ActionServe)
		m.logger.Info("config reloaded",
			"ball_speed", msg.cfg.Physics.BallSpeed,
			"paddle_speed", msg.cfg.Physics.PaddleSpeed,
			"match_point", msg.cfg.Gameplay.MatchPoint,
		)
		return m, nil

	case configErrorMsg:
		m.logger.Warn("config reload failed, keeping current settings", "error", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.tracker.Reset()
		m.logger.Debug("pause toggled", "paused", m.paused)
	case core.ActionNone:
	default:
		if !m.paused {
			m.tracker.Press(action)
		}
	}
	return m, nil
}

// handleResize applies the new terminal size before the next frame so
// the game reads the fresh aspect on its next update.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	rows := max(msg.Height-1, 0)
	m.view.Resize(msg.Width, rows)
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	m.game.Update(m.tracker.Frame())

	snap := m.game.Snapshot()
	if snap.Phase != m.lastPhase {
		m.onPhaseChange(m.lastPhase, snap)
		m.lastPhase = snap.Phase
	}

	return m, tickCmd(m.config.TickRate)
}

// onPhaseChange logs transitions and records finished matches.
func (m *Model) onPhaseChange(from pong.Phase, snap pong.Snapshot) {
	m.logger.Debug("phase", "from", from, "to", snap.Phase, "tick", snap.Tick)

	switch {
	case from == pong.PhaseGoal:
		m.logger.Info("goal",
			"left", snap.LeftScore,
			"right", snap.RightScore,
		)
		if snap.Phase == pong.PhaseOver {
			m.recordMatch(snap)
		}
	case from == pong.PhaseOver && snap.Phase == pong.PhaseBeginGame:
		m.matchStart = m.now()
		m.logger.Info("match restarted")
	}
}

// recordMatch saves a finished match. Failures are logged and the session
// continues.
func (m *Model) recordMatch(snap pong.Snapshot) {
	winner := snap.Winner()
	duration := m.now().Sub(m.matchStart)
	m.logger.Info("match over", "winner", winner, "duration", duration.Round(time.Second))

	if m.recorder == nil {
		return
	}
	saved, err := m.recorder.SaveMatch(storage.MatchRecord{
		LeftName:   snap.LeftName,
		RightName:  snap.RightName,
		LeftScore:  snap.LeftScore,
		RightScore: snap.RightScore,
		Winner:     winner,
		Duration:   duration,
	})
	if err != nil {
		m.logger.Warn("could not save match", "error", err)
		return
	}
	m.logger.Debug("match saved", "match_id", saved.MatchID)
}

// Game returns the running game.
func (m Model) Game() *pong.Game {
	return m.game
}

// Paused reports whether the game is paused.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the field with the help footer below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Draw(m.canvas)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, MsgPaused)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for a local session. When watcher is
// not nil, config changes on disk are applied to the running game.
func Run(ctx context.Context, opts Options, watcher *config.Watcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if watcher != nil {
		logger := opts.Logger
		if logger == nil {
			logger = log.New(io.Discard)
		}
		logger.Info("watching config", "path", watcher.Path())
		go func() {
			err := watcher.Run(ctx,
				func(cfg config.PongConfig) { p.Send(configReloadedMsg{cfg: cfg}) },
				func(err error) { p.Send(configErrorMsg{err: err}) },
			)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
