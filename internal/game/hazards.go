package game

import (
	"math/rand"

	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/core"
)

// Block is a hazard falling from the top of the world.
type Block struct {
	Rect  core.Rect
	Speed int // Pixels per tick, fixed when the block spawns
}

// HazardField handles spawning, falling and landing of blocks.
// Spawning draws from a seeded RNG, so a seed and an input sequence
// always replay the same run.
type HazardField struct {
	blocks     []Block
	rng        *rand.Rand
	cfg        config.Hazards
	worldW     int
	floor      int
	cooldown   int // Ticks until the next spawn
	difficulty *config.DifficultyManager
}

// NewHazardField creates a hazard field with the given RNG seed.
func NewHazardField(seed int64, cfg config.Config, diff *config.DifficultyManager) *HazardField {
	h := &HazardField{
		blocks:     make([]Block, 0, 8),
		cfg:        cfg.Hazards,
		worldW:     cfg.World.Width,
		floor:      cfg.Floor(),
		difficulty: diff,
	}
	h.Reset(seed)
	return h
}

// Reset clears all blocks and reseeds the RNG.
func (h *HazardField) Reset(seed int64) {
	h.blocks = h.blocks[:0]
	h.rng = rand.New(rand.NewSource(seed))
	h.cooldown = h.cfg.SpawnInterval // First block gives the player a moment
}

// Blocks returns the blocks currently in the air.
func (h *HazardField) Blocks() []Block {
	return h.blocks
}

// Update spawns and moves blocks, then tests them against the player's rect.
// Blocks reaching the floor are clamped onto it and counted as landed, unless
// they land on the player. Returns the landed count and whether anything hit.
func (h *HazardField) Update(player core.Rect, score int, ticks int) (landed int, hit bool) {
	if !h.cfg.Enabled {
		return 0, false
	}

	inAir := h.blocks[:0]
	for _, b := range h.blocks {
		b.Rect = b.Rect.Translate(0, b.Speed)
		grounded := b.Rect.Bottom() >= h.floor
		if grounded {
			b.Rect.Y = h.floor - b.Rect.H
		}

		if b.Rect.Intersects(player) {
			hit = true
		} else if grounded {
			landed++
			continue
		}
		inAir = append(inAir, b)
	}
	h.blocks = inAir

	h.cooldown--
	if h.cooldown <= 0 {
		h.spawn(score, ticks)
		h.cooldown = h.difficulty.Interval(h.cfg.SpawnInterval, h.cfg.MinSpawnInterval, score, ticks)
	}

	return landed, hit
}

// spawn drops a new block just above the top edge at a random column.
func (h *HazardField) spawn(score int, ticks int) {
	maxX := h.worldW - h.cfg.Width
	x := 0
	if maxX > 0 {
		x = h.rng.Intn(maxX + 1)
	}

	h.blocks = append(h.blocks, Block{
		Rect:  core.NewRect(x, -h.cfg.Height, h.cfg.Width, h.cfg.Height),
		Speed: h.difficulty.Speed(h.cfg.FallSpeed, score, ticks),
	})
}

