// Package scene drives the three TestCraft screens: the menu, the play
// screen and the game-over screen, and the transitions between them.
package scene

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/testcraft/internal/core"
	"github.com/vovakirdan/testcraft/internal/game"
)

// State is the screen currently shown.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunResult summarizes a finished run.
type RunResult struct {
	Score     int
	Ticks     int
	Forfeited bool
}

// Recorder persists finished runs.
type Recorder interface {
	Record(RunResult) error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(RunResult) error

// Record calls f(r).
func (f RecorderFunc) Record(r RunResult) error {
	return f(r)
}

// Scores is the score history a flow reads its best score from and
// records finished runs into.
type Scores interface {
	HighScore(difficulty string) (int, error)
	RecordRun(player, difficulty string, score, ticks int) error
}

// Option configures a Flow.
type Option func(*Flow)

// WithRecorder saves every finished run.
func WithRecorder(r Recorder) Option {
	return func(f *Flow) {
		f.recorder = r
	}
}

// WithLogger sets the logger for screen transitions and recording errors.
func WithLogger(l *log.Logger) Option {
	return func(f *Flow) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithBest sets the best score shown on the menu.
func WithBest(best int) Option {
	return func(f *Flow) {
		f.best = best
	}
}

// WithScores loads the best score for difficulty from s and records every
// finished run there under player. An explicit WithRecorder takes precedence
// for recording.
func WithScores(s Scores, player, difficulty string) Option {
	return func(f *Flow) {
		f.scores = s
		f.player = player
		f.difficulty = difficulty
	}
}

// WithSeeder overrides how each run is seeded.
func WithSeeder(seed func() int64) Option {
	return func(f *Flow) {
		f.seed = seed
	}
}

// Flow is the screen state machine: menu -> play -> game over -> play again.
// It is frontend-agnostic: pointers are world coordinates and input arrives
// as InputFrames.
type Flow struct {
	state      State
	game       *game.Game
	runtime    core.RuntimeConfig
	worldW     int
	worldH     int
	start      *Button
	playAgain  *Button
	recorder   Recorder
	scores     Scores
	player     string
	difficulty string
	logger     *log.Logger
	seed       func() int64
	best       int
	last       RunResult
	recorded   bool
}

// New creates a flow that starts on the menu.
// A non-zero runtime seed makes every run replay the same hazards.
func New(g *game.Game, runtime core.RuntimeConfig, opts ...Option) *Flow {
	world := g.Config().World
	f := &Flow{
		state:   StateMenu,
		game:    g,
		runtime: runtime,
		worldW:  world.Width,
		worldH:  world.Height,
		logger:  log.New(io.Discard),
		start: NewButton("Start game!", world.Width/2, world.Height/2,
			ButtonWidth, ButtonHeight, core.ColorGray, core.ColorDarkGray),
		playAgain: NewButton("Play again", world.Width/2, world.Height/2,
			ButtonWidth, ButtonHeight, core.ColorLightBlue, core.ColorBlue),
	}
	f.seed = func() int64 {
		if runtime.Seed != 0 {
			return runtime.Seed
		}
		return time.Now().UnixNano()
	}

	for _, opt := range opts {
		opt(f)
	}
	if f.scores != nil {
		f.useScores()
	}
	return f
}

func (f *Flow) useScores() {
	best, err := f.scores.HighScore(f.difficulty)
	if err != nil {
		f.logger.Warn("could not load high score", "error", err)
	}
	f.best = max(f.best, best)

	if f.recorder == nil {
		scores, player, difficulty := f.scores, f.player, f.difficulty
		f.recorder = RecorderFunc(func(r RunResult) error {
			return scores.RecordRun(player, difficulty, r.Score, r.Ticks)
		})
	}
}

// State returns the current screen.
func (f *Flow) State() State {
	return f.state
}

// Game returns the play-screen game.
func (f *Flow) Game() *game.Game {
	return f.game
}

// Best returns the best score seen so far.
func (f *Flow) Best() int {
	return f.best
}

// LastResult returns the result of the most recent finished run.
func (f *Flow) LastResult() RunResult {
	return f.last
}

// Button returns the button on the current screen, or nil while playing.
func (f *Flow) Button() *Button {
	switch f.state {
	case StateMenu:
		return f.start
	case StateGameOver:
		return f.playAgain
	default:
		return nil
	}
}

// PointerMove updates button hover state for a pointer at world (x, y).
func (f *Flow) PointerMove(x, y int) {
	if b := f.Button(); b != nil {
		b.Update(x, y)
	}
}

// Click handles a primary click at world (x, y).
// Returns true if it pressed a button.
func (f *Flow) Click(x, y int) bool {
	b := f.Button()
	if b == nil || !b.Clicked(x, y) {
		return false
	}
	f.press()
	return true
}

// Confirm presses the current screen's button from the keyboard.
// Returns true if there was a button to press.
func (f *Flow) Confirm() bool {
	if f.Button() == nil {
		return false
	}
	f.press()
	return true
}

// Back leaves the game-over screen for the menu.
// During play, giving up goes through the game's Back action instead.
func (f *Flow) Back() bool {
	if f.state != StateGameOver {
		return false
	}
	f.transition(StateMenu)
	return true
}

// press activates the current screen's button. Start begins a run;
// Play again returns to the menu, where the next run is started.
func (f *Flow) press() {
	switch f.state {
	case StateMenu:
		f.startRun()
	case StateGameOver:
		f.transition(StateMenu)
	}
}

// Step advances the play screen by one tick. Other screens are static.
func (f *Flow) Step(in core.InputFrame) {
	if f.state != StatePlaying {
		return
	}

	result := f.game.Step(in)
	if result.State.GameOver {
		f.finishRun(result.State)
	}
}

func (f *Flow) startRun() {
	rt := f.runtime
	rt.Seed = f.seed()
	f.game.Reset(rt)
	f.recorded = false
	f.transition(StatePlaying)
	f.logger.Debug("run started", "seed", rt.Seed)
}

// finishRun moves to the game-over screen and records the run once.
func (f *Flow) finishRun(state core.GameState) {
	f.last = RunResult{
		Score:     state.Score,
		Ticks:     state.Ticks,
		Forfeited: f.game.Forfeited(),
	}
	if f.last.Score > f.best {
		f.best = f.last.Score
	}
	f.transition(StateGameOver)
	f.logger.Info("run finished",
		"score", f.last.Score,
		"ticks", f.last.Ticks,
		"forfeited", f.last.Forfeited,
	)

	if f.recorder != nil && !f.recorded && f.last.Score > 0 {
		if err := f.recorder.Record(f.last); err != nil {
			// Best-effort save, the game continues regardless
			f.logger.Warn("could not record run", "error", err)
		}
	}
	f.recorded = true
}

func (f *Flow) transition(to State) {
	f.logger.Debug("screen change", "from", f.state, "to", to)
	f.state = to
	// Buttons share a spot on screen; a stale hover would flash on the next screen
	f.start.hovered = false
	f.playAgain.hovered = false
}

// Render draws the current screen.
func (f *Flow) Render(c core.Canvas) {
	switch f.state {
	case StateMenu:
		f.renderMenu(c)
	case StatePlaying:
		f.game.Render(c)
	case StateGameOver:
		f.renderGameOver(c)
	}
}

func (f *Flow) renderMenu(c core.Canvas) {
	w, h := f.worldW, f.worldH

	c.Fill(core.ColorDark)
	c.Text(w/2, h/6, "TESTCRAFT!", core.ColorBlack, core.TextLarge)
	f.start.Render(c)

	if f.best > 0 {
		c.Text(w/2, h/2+80, fmt.Sprintf("Best: %d", f.best), core.ColorWhite, core.TextSmall)
	}
	c.Text(w/2, h-90, "A/D: Run  |  Space: Jump  |  P: Pause  |  Esc: Give up", core.ColorWhite, core.TextSmall)
	c.Text(w/2, h-50, "Enter/Click: Start  |  Q: Quit", core.ColorWhite, core.TextSmall)
}

// renderGameOver draws the last play frame with the game-over overlay on top.
func (f *Flow) renderGameOver(c core.Canvas) {
	w, h := f.worldW, f.worldH

	f.game.Render(c)
	c.Text(w/2, h/2-100, "GAME OVER!", core.ColorBlack, core.TextHuge)
	f.playAgain.Render(c)
	c.Text(w/2, h/2+60, fmt.Sprintf("Score: %d  |  Best: %d", f.last.Score, f.best), core.ColorBlack, core.TextSmall)
	c.Text(w/2, h/2+100, "Enter/Click/Esc: Menu  |  Q: Quit", core.ColorBlack, core.TextSmall)
}
