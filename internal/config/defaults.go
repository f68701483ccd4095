package config

import (
	_ "embed"
)

//go:embed defaults/testcraft.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/testcraft.yaml.
func Default() Config {
	return Config{
		World: World{
			Width:  800,
			Height: 800,
		},
		Player: Player{
			Width:  50,
			Height: 50,
			SpawnX: 250,
			SpawnY: 250,
		},
		Physics: Physics{
			Gravity:     1,
			JumpImpulse: -20,
			MoveAccel:   1,
			MaxSpeed:    5,
			ClampSides:  true,
		},
		Hazards: Hazards{
			Enabled:          true,
			Width:            40,
			Height:           40,
			SpawnInterval:    90,
			MinSpawnInterval: 25,
			FallSpeed:        5,
			PointsPerDodge:   1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.5,
				IntervalReduction: 60,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
