package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left
	ActionRight          // D, Right arrow - run right
	ActionJump           // Space, W, Up - jump when standing on the floor
	ActionConfirm        // Enter - press the focused button
	ActionBack           // B, Escape - forfeit a run, or leave the game-over screen
	ActionPause          // P - pause/unpause the run
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// An action is present while its key is held.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HoldTracker turns discrete key events into a held-key state.
//
// Terminals only report key presses (and auto-repeats), never releases.
// A press keeps its action held for ttl ticks; auto-repeat refreshes it,
// so a held key stays active and a released key drops out after ttl ticks.
type HoldTracker struct {
	ttl       int
	remaining map[Action]int
}

// NewHoldTracker creates a tracker that holds each press for ttl ticks.
func NewHoldTracker(ttl int) *HoldTracker {
	if ttl < 1 {
		ttl = 1
	}
	return &HoldTracker{
		ttl:       ttl,
		remaining: make(map[Action]int),
	}
}

// Press marks the action as held for the next ttl ticks.
func (h *HoldTracker) Press(a Action) {
	h.remaining[a] = h.ttl
}

// Release drops the action immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.remaining, a)
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}

// Frame returns the actions held for this tick and ages every hold by one tick.
func (h *HoldTracker) Frame() InputFrame {
	frame := NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}
