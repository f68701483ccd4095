// Package gui provides the ebiten window frontend for TestCraft.
package gui

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/core"
	"github.com/vovakirdan/testcraft/internal/game"
	"github.com/vovakirdan/testcraft/internal/scene"
	"github.com/vovakirdan/testcraft/internal/storage"
)

// Options configures a window session.
type Options struct {
	Config     config.Config
	TickRate   int
	Seed       int64
	Store      *storage.Store // nil disables score saving
	Player     string
	Difficulty string
	Logger     *log.Logger
}

// Window implements ebiten.Game on top of the screen flow.
type Window struct {
	flow   *scene.Flow
	input  Input
	canvas *ImageCanvas
	logger *log.Logger
	worldW int
	worldH int
}

// NewWindow creates a window session that starts on the menu.
func NewWindow(opts Options) *Window {
	return newWindow(opts, deviceInput{})
}

func newWindow(opts Options, in Input) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	world := opts.Config.World

	rt := core.RuntimeConfig{
		ScreenW:  world.Width,
		ScreenH:  world.Height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	}
	flowOpts := []scene.Option{scene.WithLogger(logger)}
	if opts.Store != nil {
		flowOpts = append(flowOpts, scene.WithScores(opts.Store, opts.Player, opts.Difficulty))
	}

	return &Window{
		flow:   scene.New(game.New(opts.Config), rt, flowOpts...),
		input:  in,
		canvas: NewImageCanvas(world.Width, world.Height),
		logger: logger,
		worldW: world.Width,
		worldH: world.Height,
	}
}

// Flow returns the screen state machine.
func (w *Window) Flow() *scene.Flow {
	return w.flow
}

// Update polls input and advances the flow by one tick.
func (w *Window) Update() error {
	if justPressed(w.input, core.ActionQuit) {
		return ebiten.Termination
	}

	x, y := w.input.Cursor()
	w.flow.PointerMove(x, y)
	if w.input.Clicked() {
		w.flow.Click(x, y)
	}

	switch w.flow.State() {
	case scene.StatePlaying:
		frame := heldFrame(w.input)
		for _, a := range []core.Action{core.ActionPause, core.ActionBack} {
			if justPressed(w.input, a) {
				frame.Set(a)
			}
		}
		w.flow.Step(frame)

	case scene.StateMenu, scene.StateGameOver:
		if justPressed(w.input, core.ActionConfirm) {
			w.flow.Confirm()
		} else if justPressed(w.input, core.ActionBack) {
			w.flow.Back()
		}
	}

	return nil
}

// Draw renders the current screen.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.Target(screen)
	w.flow.Render(w.canvas)
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.worldW, w.worldH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	world := opts.Config.World
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}

	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowSize(world.Width, world.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	w := NewWindow(opts)
	w.logger.Debug("window opened", "width", world.Width, "height", world.Height, "tps", opts.TickRate)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
