package config

import (
	_ "embed"
)

//go:embed defaults/slicer.yaml
var defaultSlicerYAML []byte

// DefaultSlicerConfig returns the built-in configuration.
// Kept in sync with defaults/slicer.yaml.
func DefaultSlicerConfig() SlicerConfig {
	return SlicerConfig{
		Field: FieldConfig{
			CellAspect: 2.0,
			SimRate:    120,
		},
		Player: PlayerConfig{
			Glyph:        "🚀",
			FireInterval: 0.3,
			FollowSpeed:  80,
			KeyStep:      4,
		},
		Bullet: BulletConfig{
			Glyph:    "🔪",
			Size:     1.0,
			Speed:    30,
			Rotation: -0.785398, // -pi/4
		},
		Fruit: FruitConfig{
			MinSize: 2.0,
			MaxSize: 3.0,
			Palette: []string{"🍎", "🍊", "🍋", "🍉", "🍇", "🍓", "🍒", "🍑", "🍍", "🥝", "🥭", "🍌"},
		},
		Levels: LevelsConfig{
			MaxLevel:      50,
			HitsPerLevel:  10,
			SecondsPerHit: 3.5,
			BannerSeconds: 1.5,
		},
		Difficulty: DifficultyConfig{
			Speed: SpeedScaling{
				BaseMin:     3.0,
				BaseMax:     6.0,
				PerLevelMin: 0.2,
				PerLevelMax: 0.3,
				Max:         18.0,
			},
			Spawn: SpawnScaling{
				Base:     0.02,
				PerLevel: 0.002,
				Ceiling:  0.06,
			},
			Rotation: RotationScaling{
				Base:     1.0,
				PerLevel: 0.05,
				Max:      4.0,
			},
		},
		Particles: ParticlesConfig{
			Gravity:       30,
			FadePerSecond: 1.5,
			MinVX:         4,
			MaxVX:         8,
			MinVY:         4,
			MaxVY:         8,
			Spin:          6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSlicerYAML
}
