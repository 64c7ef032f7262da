package config

import "math"

// Difficulty holds the fruit behaviour for a single level.
type Difficulty struct {
	MinSpeed      float64 // Rows per second
	MaxSpeed      float64
	SpawnRate     float64 // Per-frame spawn probability at 60 Hz
	RotationSpeed float64 // Max spin magnitude, rad/s
}

// Target returns the hits needed to clear the given level.
func (c SlicerConfig) Target(level int) int {
	return c.Levels.HitsPerLevel * max(level, 1)
}

// TimeBudget returns the seconds allowed for the given level.
func (c SlicerConfig) TimeBudget(level int) float64 {
	return math.Ceil(float64(c.Target(level)) * c.Levels.SecondsPerHit)
}

// LevelDifficulty returns the fruit parameters for the given level.
// Every field is non-decreasing in level and clamped to its configured cap.
func (c SlicerConfig) LevelDifficulty(level int) Difficulty {
	steps := float64(max(level, 1) - 1)
	sp := c.Difficulty.Speed

	minSpeed := math.Min(sp.BaseMin+steps*sp.PerLevelMin, sp.Max)
	maxSpeed := math.Min(sp.BaseMax+steps*sp.PerLevelMax, sp.Max)
	if maxSpeed < minSpeed {
		maxSpeed = minSpeed
	}

	spawn := c.Difficulty.Spawn
	rot := c.Difficulty.Rotation

	return Difficulty{
		MinSpeed:      minSpeed,
		MaxSpeed:      maxSpeed,
		SpawnRate:     math.Min(spawn.Base+steps*spawn.PerLevel, spawn.Ceiling),
		RotationSpeed: math.Min(rot.Base+steps*rot.PerLevel, rot.Max),
	}
}

// SpawnChance converts a per-frame (60 Hz) probability into the probability
// for a step of dt seconds, so spawn density does not depend on tick rate.
func SpawnChance(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	if rate >= 1 {
		return 1
	}
	return 1 - math.Pow(1-rate, dt*60)
}
