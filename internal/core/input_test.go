package core

import "testing"

func TestInputFrame(t *testing.T) {
	var empty InputFrame
	if empty.Has(ActionServe) {
		t.Error("zero frame should have no actions")
	}

	f := FrameOf(ActionLeftUp, ActionServe)
	if !f.Has(ActionLeftUp) || !f.Has(ActionServe) {
		t.Error("FrameOf should set every listed action")
	}
	if f.Has(ActionLeftDown) {
		t.Error("unlisted action should not be set")
	}
}

func TestActionOpposite(t *testing.T) {
	tests := []struct {
		in, expected Action
	}{
		{ActionLeftUp, ActionLeftDown},
		{ActionLeftDown, ActionLeftUp},
		{ActionRightUp, ActionRightDown},
		{ActionRightDown, ActionRightUp},
		{ActionServe, ActionNone},
	}

	for _, tc := range tests {
		if got := tc.in.Opposite(); got != tc.expected {
			t.Errorf("%s.Opposite() = %s, expected %s", tc.in, got, tc.expected)
		}
	}
}

func TestTrackerHold(t *testing.T) {
	tr := NewTracker(3)
	tr.Press(ActionLeftUp)

	for i := 0; i < 3; i++ {
		if !tr.Frame().Has(ActionLeftUp) {
			t.Fatalf("frame %d: action should still be held", i)
		}
	}
	if tr.Frame().Has(ActionLeftUp) {
		t.Error("action should expire after the hold window")
	}
}

func TestTrackerRepeatExtendsHold(t *testing.T) {
	tr := NewTracker(2)
	tr.Press(ActionRightDown)
	tr.Frame()
	tr.Press(ActionRightDown) // auto-repeat
	tr.Frame()
	if !tr.Frame().Has(ActionRightDown) {
		t.Error("repeat press should extend the hold window")
	}
}

func TestTrackerOppositeReleases(t *testing.T) {
	tr := NewTracker(10)
	tr.Press(ActionLeftUp)
	tr.Frame()
	tr.Press(ActionLeftDown)

	f := tr.Frame()
	if f.Has(ActionLeftUp) {
		t.Error("pressing down should release up")
	}
	if !f.Has(ActionLeftDown) {
		t.Error("down should be held")
	}
}

func TestTrackerEdge(t *testing.T) {
	tr := NewTracker(10, ActionServe)
	tr.Press(ActionServe)
	tr.Press(ActionServe)

	if !tr.Frame().Has(ActionServe) {
		t.Error("edge action should fire on the next frame")
	}
	if tr.Frame().Has(ActionServe) {
		t.Error("edge action should fire only once")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(10, ActionServe)
	tr.Press(ActionServe)
	tr.Press(ActionLeftUp)
	tr.Reset()

	f := tr.Frame()
	if f.Has(ActionServe) || f.Has(ActionLeftUp) {
		t.Error("Reset should drop all pending presses")
	}
}
