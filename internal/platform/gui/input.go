package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/testcraft/internal/core"
)

// Input is the device state polled once per tick.
type Input interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	Clicked() bool
}

// deviceInput reads the real keyboard and mouse.
type deviceInput struct{}

func (deviceInput) Pressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (deviceInput) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (deviceInput) Cursor() (int, int) {
	return ebiten.CursorPosition()
}

func (deviceInput) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// heldKeys are polled every tick; the window sees real key-up events,
// so no hold emulation is needed.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionJump:  {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
}

// edgeKeys fire once per press.
var edgeKeys = map[core.Action][]ebiten.Key{
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionBack:    {ebiten.KeyEscape, ebiten.KeyX, ebiten.KeyB},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionQuit:    {ebiten.KeyQ},
}

// heldFrame returns the movement actions held this tick.
func heldFrame(in Input) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if in.Pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}

// justPressed reports whether any key bound to action went down this tick.
func justPressed(in Input, action core.Action) bool {
	for _, k := range edgeKeys[action] {
		if in.JustPressed(k) {
			return true
		}
	}
	return false
}
