package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/testcraft/internal/core"
)

// KeyKind says how a mapped key feeds the simulation.
type KeyKind int

const (
	KeyIgnored    KeyKind = iota
	KeyHeld               // movement: fed to the HoldTracker
	KeyOneShot            // applied once, on the next tick or immediately
	KeyQuit               // leave the program
	KeyScoreboard         // open the scoreboard
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action and how it should be applied.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, KeyKind) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, KeyQuit
	case "tab":
		return core.ActionNone, KeyScoreboard

	case "a", "left":
		return core.ActionLeft, KeyHeld
	case "d", "right":
		return core.ActionRight, KeyHeld
	case " ", "w", "up":
		return core.ActionJump, KeyHeld

	case "enter":
		return core.ActionConfirm, KeyOneShot
	case "esc", "b", "x":
		return core.ActionBack, KeyOneShot
	case "p":
		return core.ActionPause, KeyOneShot
	}

	return core.ActionNone, KeyIgnored
}
