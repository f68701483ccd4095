package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft)

	if !f.Has(ActionLeft) {
		t.Error("Frame should have Left")
	}
	if f.Has(ActionJump) {
		t.Error("Frame should not have Jump")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove Left")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionJump)
	if !zero.Has(ActionJump) {
		t.Error("Set on zero frame should work")
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionRight)

	for tick := 0; tick < 3; tick++ {
		if !h.Frame().Has(ActionRight) {
			t.Fatalf("Right should be held on tick %d", tick)
		}
	}

	if h.Frame().Has(ActionRight) {
		t.Error("Right should be released after ttl ticks")
	}
}

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(ActionLeft)

	// Auto-repeat arrives every other tick, so the key never drops out
	for tick := 0; tick < 10; tick++ {
		if tick%2 == 0 {
			h.Press(ActionLeft)
		}
		if !h.Frame().Has(ActionLeft) {
			t.Fatalf("Left should stay held with repeats, dropped on tick %d", tick)
		}
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(ActionLeft)
	h.Press(ActionJump)
	h.Release(ActionLeft)

	f := h.Frame()
	if f.Has(ActionLeft) {
		t.Error("Released action should not be in the frame")
	}
	if !f.Has(ActionJump) {
		t.Error("Other actions should stay held")
	}

	h.Reset()
	if h.Frame().Has(ActionJump) {
		t.Error("Reset should release everything")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
