// Package game implements Fruit Slicer: emoji fruit fall from the top of the
// playfield while an auto-firing ship at the bottom slices them.
//
// The simulation lives in World and is advanced by the pure Step function.
// Game wraps a World with a fixed-step driver, input handling and rendering.
package game

import (
	"math/rand"

	"github.com/vovakirdan/fruit-slicer/internal/config"
)

// Bullet is an auto-fired projectile moving up from the ship.
type Bullet struct {
	X, Y     float64
	Size     float64
	Speed    float64 // Rows per second, upward
	Rotation float64
	Glyph    rune
}

// Fruit is a falling target.
type Fruit struct {
	X, Y          float64
	Size          float64
	Speed         float64 // Rows per second, downward
	Rotation      float64
	RotationSpeed float64
	Glyph         rune
}

// Particle is one half of a sliced fruit. Purely cosmetic.
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Gravity       float64
	Alpha         float64 // 1 at birth, removed at 0
	Rotation      float64
	RotationSpeed float64
	Size          float64
	Glyph         rune
}

// Input is the ambient input for a single step.
type Input struct {
	TargetX float64 // Column the ship steers toward
}

// World holds the complete simulation state of a run.
type World struct {
	cfg     *config.SlicerConfig
	rng     *rand.Rand
	palette []rune

	Width  float64 // Playfield size in cells
	Height float64

	ShipX float64

	Bullets   []Bullet
	Fruits    []Fruit
	Particles []Particle

	Session Session
	Tick    uint64

	fireCooldown float64
}

// NewWorld creates a world at level 1 for a playfield of the given size.
func NewWorld(cfg *config.SlicerConfig, width, height int, seed int64) *World {
	w := &World{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		palette:   cfg.PaletteRunes(),
		Bullets:   make([]Bullet, 0, 16),
		Fruits:    make([]Fruit, 0, 32),
		Particles: make([]Particle, 0, 32),
	}
	w.Resize(width, height)
	w.ShipX = w.Width / 2
	w.startLevel(1)
	return w
}

// Resize changes the playfield bounds. Entities are kept; anything now
// outside the field is culled by the normal exit rules.
func (w *World) Resize(width, height int) {
	w.Width = float64(max(width, 2))
	w.Height = float64(max(height, 2))
	w.ShipX = w.clampShipX(w.ShipX)
}

// ShipY returns the row the ship occupies.
func (w *World) ShipY() float64 {
	return w.Height - 1
}

// clampShipX keeps the ship's double-width glyph inside the field.
func (w *World) clampShipX(x float64) float64 {
	lo, hi := 1.0, w.Width-1
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// steer moves the ship toward the target column.
func (w *World) steer(targetX, dt float64) {
	targetX = w.clampShipX(targetX)
	speed := w.cfg.Player.FollowSpeed
	if speed <= 0 {
		w.ShipX = targetX
		return
	}

	maxMove := speed * dt
	delta := targetX - w.ShipX
	switch {
	case delta > maxMove:
		w.ShipX += maxMove
	case delta < -maxMove:
		w.ShipX -= maxMove
	default:
		w.ShipX = targetX
	}
}

// clearEntities empties every transient collection, keeping capacity.
func (w *World) clearEntities() {
	w.Bullets = w.Bullets[:0]
	w.Fruits = w.Fruits[:0]
	w.Particles = w.Particles[:0]
}

// randRange returns a uniform value in [lo, hi].
func (w *World) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}
