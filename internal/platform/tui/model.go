package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/core"
	"github.com/vovakirdan/testcraft/internal/game"
	"github.com/vovakirdan/testcraft/internal/scene"
	"github.com/vovakirdan/testcraft/internal/storage"
)

// DefaultHoldDuration is how long a key press counts as held without a
// repeat. It bridges the terminal's initial auto-repeat delay.
const DefaultHoldDuration = 500 * time.Millisecond

// Options configures a terminal session.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Store      *storage.Store // nil disables score saving
	Player     string
	Difficulty string // label stored with every run
	Logger     *log.Logger

	// HoldDuration overrides DefaultHoldDuration when positive.
	HoldDuration time.Duration

	// Renderer styles the view; nil uses the default renderer.
	// SSH sessions pass one bound to the client's terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model running the TestCraft screens.
type Model struct {
	flow      *scene.Flow
	screen    *core.Screen
	canvas    *core.ScreenCanvas
	hold      *core.HoldTracker
	pending   core.InputFrame // one-shot actions for the next tick
	keys      *KeyMapper
	config    core.RuntimeConfig
	logger    *log.Logger
	renderer  *lipgloss.Renderer
	board     ScoreboardModel
	showBoard bool
	quitting  bool
}

// NewModel creates a model that starts on the menu.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := game.New(opts.Config)
	flowOpts := []scene.Option{scene.WithLogger(logger)}
	if opts.Store != nil {
		flowOpts = append(flowOpts, scene.WithScores(opts.Store, opts.Player, opts.Difficulty))
	}

	world := opts.Config.World
	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)

	ttl := holdTicks(opts.HoldDuration, rt.TickRate)
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	board := NewScoreboardModel(opts.Store, opts.Difficulty, rt.ScreenW, rt.ScreenH)
	board.embedded = true

	return Model{
		flow:     scene.New(g, rt, flowOpts...),
		screen:   screen,
		canvas:   core.NewScreenCanvas(screen, world.Width, world.Height),
		hold:     core.NewHoldTracker(ttl),
		pending:  core.NewInputFrame(),
		keys:     NewKeyMapper(),
		config:   rt,
		logger:   logger,
		renderer: renderer,
		board:    board,
	}
}

// holdTicks converts a hold duration to whole ticks at rate.
func holdTicks(d time.Duration, rate int) int {
	if d <= 0 {
		d = DefaultHoldDuration
	}
	return int(d * time.Duration(rate) / time.Second)
}

// Flow returns the screen state machine.
func (m Model) Flow() *scene.Flow {
	return m.flow
}

// ShowingScoreboard reports whether the scoreboard is open.
func (m Model) ShowingScoreboard() bool {
	return m.showBoard
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		if m.showBoard {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showBoard {
			return m, nil
		}
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, kind := m.keys.MapKey(msg)

	switch kind {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit

	case KeyScoreboard:
		if m.flow.State() != scene.StatePlaying {
			m.board.goingBack = false
			m.board.Refresh()
			m.showBoard = true
		}

	case KeyHeld:
		// Reversing direction drops the old one at once
		switch action {
		case core.ActionLeft:
			m.hold.Release(core.ActionRight)
		case core.ActionRight:
			m.hold.Release(core.ActionLeft)
		}
		m.hold.Press(action)

	case KeyOneShot:
		m.applyOneShot(action)
	}

	return m, nil
}

// applyOneShot routes edge-triggered actions: screen buttons react at once,
// in-game actions wait for the next tick.
func (m Model) applyOneShot(action core.Action) {
	playing := m.flow.State() == scene.StatePlaying

	switch action {
	case core.ActionConfirm:
		if m.flow.Confirm() {
			m.hold.Reset()
		}
	case core.ActionBack:
		if playing {
			m.pending.Set(core.ActionBack)
		} else {
			m.flow.Back()
		}
	case core.ActionPause:
		if playing {
			m.pending.Set(core.ActionPause)
		}
	}
}

// handleMouse maps the pointer cell to a world point for hover and click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.canvas.ToWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.flow.PointerMove(x, y)
	case tea.MouseActionPress:
		m.flow.PointerMove(x, y)
		if msg.Button == tea.MouseButtonLeft && m.flow.Click(x, y) {
			m.hold.Reset()
		}
	}

	return m, nil
}

// updateBoard forwards input to the scoreboard until it hands control back.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		m.showBoard = false
	}
	return m, cmd
}

// handleResize keeps the run going at the new size; only the view scales.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)

	next, _ := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = board
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.showBoard {
		frame := m.hold.Frame()
		for a := range m.pending.Actions {
			frame.Set(a)
		}
		m.pending.Clear()

		m.flow.Step(frame)

		// Keys held when a run ends must not leak into the next one
		if m.flow.State() != scene.StatePlaying {
			m.hold.Reset()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View()
	}

	m.flow.Render(m.canvas)
	return RenderScreen(m.renderer, m.screen)
}

// ProgramOptions are the Bubble Tea options every session runs with.
// Buttons need motion events without a pressed button for hover.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), ProgramOptions()...)

	_, err := p.Run()
	return err
}
