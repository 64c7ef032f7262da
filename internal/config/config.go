// Package config provides YAML-based game configuration loading and
// level difficulty scaling for the slicer.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SlicerConfig contains all tunable parameters of the game.
// Distances are in terminal cells, speeds in cells per second.
type SlicerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Fruit      FruitConfig      `yaml:"fruit"`
	Levels     LevelsConfig     `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Particles  ParticlesConfig  `yaml:"particles"`
}

// FieldConfig describes the playfield geometry.
type FieldConfig struct {
	CellAspect float64 `yaml:"cell_aspect"` // Cell height / width, scales vertical distances
	SimRate    int     `yaml:"sim_rate"`    // Simulation steps per second, independent of the frame rate
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Glyph        string  `yaml:"glyph"`
	FireInterval float64 `yaml:"fire_interval"` // Seconds between auto-fired bullets
	FollowSpeed  float64 `yaml:"follow_speed"`  // Columns per second toward the pointer, 0 = snap
	KeyStep      int     `yaml:"key_step"`      // Columns a left/right key press moves the target
}

// BulletConfig defines auto-fired projectiles.
type BulletConfig struct {
	Glyph    string  `yaml:"glyph"`
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`    // Rows per second, upward
	Rotation float64 `yaml:"rotation"` // Fixed orientation in radians
}

// FruitConfig defines falling targets.
type FruitConfig struct {
	MinSize float64  `yaml:"min_size"`
	MaxSize float64  `yaml:"max_size"`
	Palette []string `yaml:"palette"` // One glyph per entry
}

// LevelsConfig defines level objectives.
type LevelsConfig struct {
	MaxLevel      int     `yaml:"max_level"`
	HitsPerLevel  int     `yaml:"hits_per_level"`  // Target for level L is HitsPerLevel * L
	SecondsPerHit float64 `yaml:"seconds_per_hit"` // Time budget is ceil(target * SecondsPerHit)
	BannerSeconds float64 `yaml:"banner_seconds"`  // How long the level-up banner shows
}

// DifficultyConfig defines how fruit behaviour scales with the level.
type DifficultyConfig struct {
	Speed    SpeedScaling    `yaml:"speed"`
	Spawn    SpawnScaling    `yaml:"spawn"`
	Rotation RotationScaling `yaml:"rotation"`
}

// SpeedScaling defines the fruit fall speed range per level.
type SpeedScaling struct {
	BaseMin     float64 `yaml:"base_min"`
	BaseMax     float64 `yaml:"base_max"`
	PerLevelMin float64 `yaml:"per_level_min"`
	PerLevelMax float64 `yaml:"per_level_max"`
	Max         float64 `yaml:"max"` // Neither bound grows past this
}

// SpawnScaling defines the per-frame spawn probability per level.
type SpawnScaling struct {
	Base     float64 `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Ceiling  float64 `yaml:"ceiling"` // Hard cap, bounds on-screen fruit count
}

// RotationScaling defines the maximum fruit spin per level.
type RotationScaling struct {
	Base     float64 `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Max      float64 `yaml:"max"`
}

// ParticlesConfig defines the slice effect.
type ParticlesConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Rows per second squared
	FadePerSecond float64 `yaml:"fade_per_second"` // Alpha lost per second
	MinVX         float64 `yaml:"min_vx"`
	MaxVX         float64 `yaml:"max_vx"`
	MinVY         float64 `yaml:"min_vy"` // Initial upward speed range
	MaxVY         float64 `yaml:"max_vy"`
	Spin          float64 `yaml:"spin"` // Max rotation speed, rad/s
}

// Validate checks that every parameter is usable by the simulation.
func (c SlicerConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Field.CellAspect > 0, "field.cell_aspect must be > 0"},
		{c.Field.SimRate > 0, "field.sim_rate must be > 0"},
		{c.Player.Glyph != "", "player.glyph must not be empty"},
		{c.Player.FireInterval > 0, "player.fire_interval must be > 0"},
		{c.Player.FollowSpeed >= 0, "player.follow_speed must be >= 0"},
		{c.Player.KeyStep > 0, "player.key_step must be > 0"},
		{c.Bullet.Glyph != "", "bullet.glyph must not be empty"},
		{c.Bullet.Size > 0, "bullet.size must be > 0"},
		{c.Bullet.Speed > 0, "bullet.speed must be > 0"},
		{c.Fruit.MinSize > 0, "fruit.min_size must be > 0"},
		{c.Fruit.MaxSize >= c.Fruit.MinSize, "fruit.max_size must be >= fruit.min_size"},
		{len(c.Fruit.Palette) > 0, "fruit.palette must not be empty"},
		{c.Levels.MaxLevel >= 1, "levels.max_level must be >= 1"},
		{c.Levels.HitsPerLevel >= 1, "levels.hits_per_level must be >= 1"},
		{c.Levels.SecondsPerHit > 0, "levels.seconds_per_hit must be > 0"},
		{c.Levels.BannerSeconds >= 0, "levels.banner_seconds must be >= 0"},
		{c.Difficulty.Speed.BaseMin > 0, "difficulty.speed.base_min must be > 0"},
		{c.Difficulty.Speed.BaseMax >= c.Difficulty.Speed.BaseMin, "difficulty.speed.base_max must be >= base_min"},
		{c.Difficulty.Speed.PerLevelMin >= 0 && c.Difficulty.Speed.PerLevelMax >= 0, "difficulty.speed per-level increments must be >= 0"},
		{c.Difficulty.Speed.Max >= c.Difficulty.Speed.BaseMax, "difficulty.speed.max must be >= base_max"},
		{c.Difficulty.Spawn.Base >= 0 && c.Difficulty.Spawn.PerLevel >= 0, "difficulty.spawn rates must be >= 0"},
		{c.Difficulty.Spawn.Ceiling > 0 && c.Difficulty.Spawn.Ceiling <= 1, "difficulty.spawn.ceiling must be in (0, 1]"},
		{c.Difficulty.Rotation.Base >= 0 && c.Difficulty.Rotation.PerLevel >= 0, "difficulty.rotation must be >= 0"},
		{c.Difficulty.Rotation.Max >= c.Difficulty.Rotation.Base, "difficulty.rotation.max must be >= base"},
		{c.Particles.FadePerSecond > 0, "particles.fade_per_second must be > 0"},
		{c.Particles.MaxVX >= c.Particles.MinVX, "particles.max_vx must be >= min_vx"},
		{c.Particles.MaxVY >= c.Particles.MinVY, "particles.max_vy must be >= min_vy"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}

	for i, g := range c.Fruit.Palette {
		if len([]rune(g)) != 1 {
			return fmt.Errorf("%w: fruit.palette[%d] %q must be a single glyph", ErrInvalidConfig, i, g)
		}
	}
	return nil
}

// Glyph returns the first rune of a configured glyph string.
func Glyph(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

// PaletteRunes returns the fruit palette as runes.
func (c SlicerConfig) PaletteRunes() []rune {
	out := make([]rune, len(c.Fruit.Palette))
	for i, g := range c.Fruit.Palette {
		out[i] = Glyph(g)
	}
	return out
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// presetScale returns the speed/spawn multiplier for a preset.
func presetScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}
