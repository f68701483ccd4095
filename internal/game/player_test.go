package game

import (
	"testing"

	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/core"
)

// groundedPlayer returns a default sprite standing on the floor at x=400.
func groundedPlayer(cfg config.Config) *Player {
	p := NewPlayer(cfg)
	p.Rect = p.Rect.WithMidBottom(400, cfg.Floor())
	return p
}

func TestPlayerSpawn(t *testing.T) {
	p := NewPlayer(config.Default())

	x, y := p.Rect.MidBottom()
	if x != 250 || y != 250 {
		t.Errorf("Spawn midbottom = (%d, %d), expected (250, 250)", x, y)
	}
	if p.OnFloor() {
		t.Error("Sprite should spawn in the air")
	}
	if p.Facing != FacingRight {
		t.Error("Sprite should face right initially")
	}
}

func TestPlayerFallsToFloor(t *testing.T) {
	p := NewPlayer(config.Default())
	none := core.NewInputFrame()

	// Gravity adds 1 per tick: after n ticks the sprite has fallen n(n+1)/2 pixels
	for i := 0; i < 32; i++ {
		p.Update(none)
	}
	if p.Rect.Bottom() != 250+528 {
		t.Errorf("After 32 ticks bottom = %d, expected 778", p.Rect.Bottom())
	}
	if p.Vy != 32 {
		t.Errorf("After 32 ticks Vy = %d, expected 32", p.Vy)
	}

	p.Update(none)
	if !p.OnFloor() || p.Rect.Bottom() != 800 {
		t.Errorf("Sprite should land on the floor, bottom = %d", p.Rect.Bottom())
	}
	if p.Vy != 0 {
		t.Errorf("Landing should zero Vy, got %d", p.Vy)
	}

	// Standing still stays still
	p.Update(none)
	if p.Rect.Bottom() != 800 || p.Vy != 0 {
		t.Errorf("Grounded sprite moved: bottom=%d Vy=%d", p.Rect.Bottom(), p.Vy)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	cfg := config.Default()
	p := groundedPlayer(cfg)

	// Jump tick: impulse applied, no gravity yet
	p.Update(core.NewInputFrame(core.ActionJump))
	if p.Vy != -20 {
		t.Errorf("Jump Vy = %d, expected -20", p.Vy)
	}
	if p.Rect.Bottom() != 780 {
		t.Errorf("Jump tick bottom = %d, expected 780", p.Rect.Bottom())
	}

	// Next tick gravity starts
	p.Update(core.NewInputFrame())
	if p.Vy != -19 || p.Rect.Bottom() != 761 {
		t.Errorf("Second tick Vy=%d bottom=%d, expected -19 and 761", p.Vy, p.Rect.Bottom())
	}

	// Peak is 210 pixels above the floor and the sprite lands after 40 gravity ticks
	highest := p.Rect.Bottom()
	ticks := 1
	for !p.OnFloor() {
		p.Update(core.NewInputFrame())
		highest = min(highest, p.Rect.Bottom())
		ticks++
		if ticks > 100 {
			t.Fatal("Sprite never landed")
		}
	}
	if highest != 800-210 {
		t.Errorf("Peak bottom = %d, expected 590", highest)
	}
	if ticks != 40 {
		t.Errorf("Airborne for %d gravity ticks, expected 40", ticks)
	}
	if p.Vy != 0 {
		t.Errorf("Vy after landing = %d, expected 0", p.Vy)
	}
}

func TestPlayerCannotJumpInAir(t *testing.T) {
	p := NewPlayer(config.Default())

	p.Update(core.NewInputFrame(core.ActionJump))

	if p.Vy != 1 {
		t.Errorf("Airborne jump should be ignored, Vy = %d, expected 1", p.Vy)
	}
}

func TestPlayerHorizontalRamp(t *testing.T) {
	p := groundedPlayer(config.Default())
	startX := p.Rect.X
	right := core.NewInputFrame(core.ActionRight)

	expectedVx := []int{1, 2, 3, 4, 5, 5}
	for i, want := range expectedVx {
		p.Update(right)
		if p.Vx != want {
			t.Errorf("Tick %d: Vx = %d, expected %d", i, p.Vx, want)
		}
	}
	if moved := p.Rect.X - startX; moved != 20 {
		t.Errorf("Moved %d pixels, expected 1+2+3+4+5+5 = 20", moved)
	}

	// Releasing both directions stops immediately
	p.Update(core.NewInputFrame())
	if p.Vx != 0 {
		t.Errorf("Vx after release = %d, expected 0", p.Vx)
	}
}

func TestPlayerTurnKeepsSpeed(t *testing.T) {
	p := groundedPlayer(config.Default())
	for i := 0; i < 3; i++ {
		p.Update(core.NewInputFrame(core.ActionRight))
	}
	x := p.Rect.X

	p.Update(core.NewInputFrame(core.ActionLeft))

	if p.Facing != FacingLeft {
		t.Error("Sprite should face left")
	}
	if p.Vx != 4 {
		t.Errorf("Vx after turn = %d, expected 4", p.Vx)
	}
	if p.Rect.X != x-4 {
		t.Errorf("X after turn = %d, expected %d", p.Rect.X, x-4)
	}
}

func TestPlayerRightWinsOverLeft(t *testing.T) {
	p := groundedPlayer(config.Default())
	x := p.Rect.X

	p.Update(core.NewInputFrame(core.ActionLeft, core.ActionRight))

	if p.Facing != FacingRight || p.Rect.X != x+1 {
		t.Errorf("Both directions held: facing=%v x=%d, expected right and %d", p.Facing, p.Rect.X, x+1)
	}
}

func TestPlayerJumpDoesNotBlockMove(t *testing.T) {
	p := groundedPlayer(config.Default())
	x := p.Rect.X

	p.Update(core.NewInputFrame(core.ActionJump, core.ActionRight))

	if p.Rect.X != x+1 {
		t.Errorf("X while jumping = %d, expected %d", p.Rect.X, x+1)
	}
	if p.Vy != -20 {
		t.Errorf("Vy = %d, expected -20", p.Vy)
	}
}

func TestPlayerClampSides(t *testing.T) {
	cfg := config.Default()
	p := groundedPlayer(cfg)
	p.Rect.X = 2

	for i := 0; i < 5; i++ {
		p.Update(core.NewInputFrame(core.ActionLeft))
	}
	if p.Rect.X != 0 {
		t.Errorf("X = %d, expected clamp at 0", p.Rect.X)
	}

	p.Rect.X = cfg.World.Width - p.Rect.W - 1
	for i := 0; i < 5; i++ {
		p.Update(core.NewInputFrame(core.ActionRight))
	}
	if p.Rect.Right() != cfg.World.Width {
		t.Errorf("Right = %d, expected clamp at %d", p.Rect.Right(), cfg.World.Width)
	}
}

func TestPlayerNoSideClamp(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.ClampSides = false
	p := groundedPlayer(cfg)
	p.Rect.X = 0

	p.Update(core.NewInputFrame(core.ActionLeft))

	if p.Rect.X != -1 {
		t.Errorf("X = %d, expected the sprite to leave the screen", p.Rect.X)
	}
}

func TestPlayerCeilingClamp(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.JumpImpulse = -900
	p := groundedPlayer(cfg)

	p.Update(core.NewInputFrame(core.ActionJump))

	if p.Rect.Y != 0 || p.Vy != 0 {
		t.Errorf("Huge jump should stop at the top: y=%d Vy=%d", p.Rect.Y, p.Vy)
	}
}
