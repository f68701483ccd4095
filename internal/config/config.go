// Package config provides YAML-based game configuration loading and
// difficulty management for TestCraft.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for a TestCraft run.
// Distances are world pixels, speeds are pixels per tick.
type Config struct {
	World      World            `yaml:"world"`
	Player     Player           `yaml:"player"`
	Physics    Physics          `yaml:"physics"`
	Hazards    Hazards          `yaml:"hazards"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// World defines the playfield. The floor is the bottom edge.
type World struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Player defines the sprite size and where it appears.
// SpawnX/SpawnY place the middle of the sprite's bottom edge.
type Player struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// Physics defines the velocity accumulators.
type Physics struct {
	Gravity     int  `yaml:"gravity"`      // Added to Vy every airborne tick
	JumpImpulse int  `yaml:"jump_impulse"` // Vy set on jump (negative = up)
	MoveAccel   int  `yaml:"move_accel"`   // Added to Vx every tick a direction is held
	MaxSpeed    int  `yaml:"max_speed"`    // Vx stops accelerating at this value
	ClampSides  bool `yaml:"clamp_sides"`  // Keep the sprite inside the side and top edges
}

// Hazards defines the blocks falling from the top of the world.
type Hazards struct {
	Enabled          bool `yaml:"enabled"`
	Width            int  `yaml:"width"`
	Height           int  `yaml:"height"`
	SpawnInterval    int  `yaml:"spawn_interval"`     // Ticks between spawns at the lowest difficulty
	MinSpawnInterval int  `yaml:"min_spawn_interval"` // Spawns never come faster than this
	FallSpeed        int  `yaml:"fall_speed"`         // Pixels per tick at the lowest difficulty
	PointsPerDodge   int  `yaml:"points_per_dodge"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to fall speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// Floor returns the y-coordinate the sprite stands on.
func (c Config) Floor() int {
	return c.World.Height
}

// Validate reports configuration that cannot produce a playable world.
func (c Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %dx%d", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.World.Width || c.Player.Height > c.World.Height {
		errs = append(errs, errors.New("player does not fit in the world"))
	}
	if c.Physics.MaxSpeed < 0 || c.Physics.MoveAccel < 0 {
		errs = append(errs, errors.New("max_speed and move_accel must not be negative"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %d", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse > 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must point up (<= 0), got %d", c.Physics.JumpImpulse))
	}
	if c.Hazards.Enabled {
		if c.Hazards.Width <= 0 || c.Hazards.Height <= 0 {
			errs = append(errs, errors.New("hazard size must be positive"))
		}
		if c.Hazards.Width > c.World.Width {
			errs = append(errs, errors.New("hazards do not fit in the world"))
		}
		if c.Hazards.SpawnInterval <= 0 || c.Hazards.FallSpeed <= 0 {
			errs = append(errs, errors.New("hazard spawn_interval and fall_speed must be positive"))
		}
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every named preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value into a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
