package game

import (
	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/core"
)

// Direction is the way the sprite faces.
type Direction int

const (
	FacingRight Direction = iota
	FacingLeft
)

// String returns "right" or "left".
func (d Direction) String() string {
	if d == FacingLeft {
		return "left"
	}
	return "right"
}

// Player is the controllable sprite. Position is the sprite's rect in world
// pixels; Vx is a speed along the facing direction, Vy is signed (negative = up).
type Player struct {
	Rect   core.Rect
	Facing Direction
	Vx     int
	Vy     int

	physics config.Physics
	worldW  int
	floor   int
}

// NewPlayer creates a sprite with its bottom edge centered on the spawn point.
func NewPlayer(cfg config.Config) *Player {
	rect := core.NewRect(0, 0, cfg.Player.Width, cfg.Player.Height).
		WithMidBottom(cfg.Player.SpawnX, cfg.Player.SpawnY)

	p := &Player{
		Rect:    rect,
		Facing:  FacingRight,
		physics: cfg.Physics,
		worldW:  cfg.World.Width,
		floor:   cfg.Floor(),
	}
	p.clampBounds()
	return p
}

// OnFloor reports whether the sprite is standing on the floor.
func (p *Player) OnFloor() bool {
	return p.Rect.Bottom() >= p.floor
}

// Update advances the sprite by one tick.
//
// Whether the sprite is grounded is decided once, before anything moves:
// a jump only starts from the floor, and gravity only acts on a sprite that
// was airborne when the tick began. The jump tick itself is gravity-free.
func (p *Player) Update(in core.InputFrame) {
	grounded := p.OnFloor()

	switch {
	case in.Has(core.ActionRight):
		p.turn(FacingRight)
		p.move()
	case in.Has(core.ActionLeft):
		p.turn(FacingLeft)
		p.move()
	default:
		p.Vx = 0
	}

	if in.Has(core.ActionJump) && grounded {
		p.jump()
	}

	if !grounded {
		p.fall()
	}

	p.clampBounds()
}

// turn faces the sprite in the new direction. Speed carries over.
func (p *Player) turn(d Direction) {
	p.Facing = d
}

// move ramps Vx up to the speed cap and shifts the sprite along its facing.
func (p *Player) move() {
	if p.Vx < p.physics.MaxSpeed {
		p.Vx = min(p.Vx+p.physics.MoveAccel, p.physics.MaxSpeed)
	}
	if p.Facing == FacingRight {
		p.Rect = p.Rect.Translate(p.Vx, 0)
	} else {
		p.Rect = p.Rect.Translate(-p.Vx, 0)
	}
}

func (p *Player) jump() {
	p.Vy = p.physics.JumpImpulse
	p.Rect = p.Rect.Translate(0, p.Vy)
}

// fall applies gravity and lands the sprite on the floor.
func (p *Player) fall() {
	p.Vy += p.physics.Gravity
	p.Rect = p.Rect.Translate(0, p.Vy)
	if p.Rect.Bottom() >= p.floor {
		p.Rect.Y = p.floor - p.Rect.H
		p.Vy = 0
	}
}

// clampBounds keeps the sprite above the floor and, when configured,
// inside the side and top edges of the world.
func (p *Player) clampBounds() {
	if p.Rect.Bottom() > p.floor {
		p.Rect.Y = p.floor - p.Rect.H
	}
	if !p.physics.ClampSides {
		return
	}
	p.Rect.X = core.Clamp(p.Rect.X, 0, p.worldW-p.Rect.W)
	if p.Rect.Y < 0 {
		p.Rect.Y = 0
		if p.Vy < 0 {
			p.Vy = 0
		}
	}
}
