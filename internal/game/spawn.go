package game

import (
	"math"

	"github.com/vovakirdan/fruit-slicer/internal/config"
)

// autoFire counts the fire cooldown down and launches a bullet when it expires.
func (w *World) autoFire(dt float64) {
	w.fireCooldown -= dt
	if w.fireCooldown > 0 {
		return
	}

	b := w.cfg.Bullet
	w.Bullets = append(w.Bullets, Bullet{
		X:        w.ShipX,
		Y:        w.ShipY() - 0.5,
		Size:     b.Size,
		Speed:    b.Speed,
		Rotation: b.Rotation,
		Glyph:    config.Glyph(b.Glyph),
	})

	w.fireCooldown += w.cfg.Player.FireInterval
	// A long stall must not queue a burst of shots
	if w.fireCooldown <= 0 {
		w.fireCooldown = w.cfg.Player.FireInterval
	}
}

// maybeSpawnFruit rolls the level's spawn chance and drops one fruit on success.
func (w *World) maybeSpawnFruit(dt float64) {
	d := w.cfg.LevelDifficulty(w.Session.Level)
	if w.rng.Float64() >= config.SpawnChance(d.SpawnRate, dt) {
		return
	}
	w.spawnFruit(d)
}

// spawnFruit places a fruit just above the top edge.
func (w *World) spawnFruit(d config.Difficulty) {
	fc := w.cfg.Fruit
	size := w.randRange(fc.MinSize, fc.MaxSize)
	half := size / 2

	w.Fruits = append(w.Fruits, Fruit{
		X:             w.randRange(half, w.Width-half),
		Y:             -half,
		Size:          size,
		Speed:         w.randRange(d.MinSpeed, d.MaxSpeed),
		Rotation:      w.randRange(0, 2*math.Pi),
		RotationSpeed: w.randRange(-d.RotationSpeed, d.RotationSpeed),
		Glyph:         w.palette[w.rng.Intn(len(w.palette))],
	})
}

// spawnSlice emits the two halves of a sliced fruit, flying apart.
func (w *World) spawnSlice(f Fruit) {
	pc := w.cfg.Particles
	for _, dir := range [2]float64{-1, 1} {
		w.Particles = append(w.Particles, Particle{
			X:             f.X,
			Y:             f.Y,
			VX:            dir * w.randRange(pc.MinVX, pc.MaxVX),
			VY:            -w.randRange(pc.MinVY, pc.MaxVY),
			Gravity:       pc.Gravity,
			Alpha:         1,
			Rotation:      f.Rotation,
			RotationSpeed: dir * w.randRange(0, pc.Spin),
			Size:          f.Size,
			Glyph:         f.Glyph,
		})
	}
}
