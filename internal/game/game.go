// Package game implements the TestCraft play screen: one sprite running and
// jumping on the floor of the world while blocks fall from the sky.
package game

import (
	"fmt"

	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/core"
)

// Title is the display name shown on the menu and window.
const Title = "TestCraft!"

// Game implements the play-screen logic. It is driven one fixed tick at a time
// and knows nothing about terminals or windows.
type Game struct {
	player     *Player
	hazards    *HazardField
	difficulty *config.DifficultyManager
	cfg        config.Config
	runtime    core.RuntimeConfig
	score      int
	tickCount  int
	gameOver   bool
	forfeited  bool
	paused     bool
}

// New creates a game with the given configuration. Call Reset before stepping.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Config returns the game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.player = NewPlayer(g.cfg)

	if g.hazards == nil {
		g.hazards = NewHazardField(runtime.Seed, g.cfg, g.difficulty)
	} else {
		g.hazards.difficulty = g.difficulty
		g.hazards.Reset(runtime.Seed)
	}

	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.forfeited = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Giving up ends the run with the score so far
	if in.Has(core.ActionBack) {
		g.gameOver = true
		g.forfeited = true
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.player.Update(in)

	landed, hit := g.hazards.Update(g.player.Rect, g.score, g.tickCount)
	g.score += landed * g.cfg.Hazards.PointsPerDodge
	if hit {
		g.gameOver = true
	}

	return core.StepResult{State: g.State(), Dodged: landed}
}

// Player returns the controllable sprite.
func (g *Game) Player() *Player {
	return g.player
}

// Blocks returns the hazards currently falling.
func (g *Game) Blocks() []Block {
	return g.hazards.Blocks()
}

// Forfeited reports whether the run ended because the player gave up.
func (g *Game) Forfeited() bool {
	return g.forfeited
}

// Level returns the current difficulty level (0.0 to 1.0).
func (g *Game) Level() float64 {
	return g.difficulty.Level(g.score, g.tickCount)
}

// Render draws the playfield.
func (g *Game) Render(c core.Canvas) {
	c.Fill(core.ColorDarkGray)

	for _, b := range g.hazards.Blocks() {
		c.FillRect(b.Rect, core.ColorRed)
	}

	g.drawPlayer(c)

	// HUD
	c.TextAt(10, 10, fmt.Sprintf("Score: %d", g.score), core.ColorBlack)
	if g.difficulty.IsEnabled() {
		w, _ := c.Size()
		c.TextAt(w-160, 10, fmt.Sprintf("Level: %3.0f%%", g.Level()*100), core.ColorBlack)
	}

	if g.paused {
		w, h := c.Size()
		c.Text(w/2, h/2-40, "PAUSED", core.ColorBlack, core.TextLarge)
		c.Text(w/2, h/2+20, "Press P to resume", core.ColorBlack, core.TextSmall)
	}
}

// drawPlayer draws the sprite body with an eye on the side it faces.
func (g *Game) drawPlayer(c core.Canvas) {
	r := g.player.Rect
	c.FillRect(r, core.ColorGreen)

	eye := max(r.W/5, 1)
	eyeX := r.Right() - 2*eye
	if g.player.Facing == FacingLeft {
		eyeX = r.X + eye
	}
	c.FillRect(core.NewRect(eyeX, r.Y+eye, eye, eye), core.ColorBlack)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Ticks:    g.tickCount,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
