package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // Q - left paddle up
	ActionLeftDown         // A - left paddle down
	ActionRightUp          // O - right paddle up
	ActionRightDown        // L - right paddle down
	ActionServe            // Space - serve / restart
	ActionPause            // P - pause/unpause
	ActionQuit             // Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionServe:
		return "Serve"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Opposite returns the paddle action pulling the other way, or ActionNone.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeftUp:
		return ActionLeftDown
	case ActionLeftDown:
		return ActionLeftUp
	case ActionRightUp:
		return ActionRightDown
	case ActionRightDown:
		return ActionRightUp
	default:
		return ActionNone
	}
}

// InputFrame is the input snapshot for one simulation tick.
// It lists every action that is active during the frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions active.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Tracker turns a stream of key press events into per-frame snapshots.
//
// Terminals only report presses (plus auto-repeat), never releases, so a
// held action stays active for holdTicks frames after its latest press.
// Edge actions are active for exactly one frame per press.
type Tracker struct {
	holdTicks int
	tick      int
	lastPress map[Action]int
	edge      map[Action]bool
	pending   map[Action]bool
}

// NewTracker creates a tracker. Actions listed in edges are edge-triggered.
func NewTracker(holdTicks int, edges ...Action) *Tracker {
	t := &Tracker{
		holdTicks: max(holdTicks, 1),
		lastPress: make(map[Action]int),
		edge:      make(map[Action]bool),
		pending:   make(map[Action]bool),
	}
	for _, a := range edges {
		t.edge[a] = true
	}
	return t
}

// Press records a key press for the current frame.
func (t *Tracker) Press(a Action) {
	if a == ActionNone {
		return
	}
	if t.edge[a] {
		t.pending[a] = true
		return
	}
	t.lastPress[a] = t.tick
	if opp := a.Opposite(); opp != ActionNone {
		delete(t.lastPress, opp)
	}
}

// Frame returns the snapshot for the current tick and advances to the next.
// Call it exactly once per simulation tick.
func (t *Tracker) Frame() InputFrame {
	f := NewInputFrame()
	for a, at := range t.lastPress {
		if t.tick-at < t.holdTicks {
			f.Set(a)
		} else {
			delete(t.lastPress, a)
		}
	}
	for a := range t.pending {
		f.Set(a)
		delete(t.pending, a)
	}
	t.tick++
	return f
}

// Reset forgets every recorded press.
func (t *Tracker) Reset() {
	clear(t.lastPress)
	clear(t.pending)
}
