package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestTargetAndTimeBudget(t *testing.T) {
	cfg := DefaultSlicerConfig()

	for level := 1; level <= cfg.Levels.MaxLevel; level++ {
		target := cfg.Target(level)
		if target != 10*level {
			t.Errorf("Target(%d) = %d, expected %d", level, target, 10*level)
		}
		budget := cfg.TimeBudget(level)
		want := math.Ceil(3.5 * float64(10*level))
		if budget != want {
			t.Errorf("TimeBudget(%d) = %v, expected %v", level, budget, want)
		}
	}

	if cfg.Target(1) != 10 || cfg.TimeBudget(1) != 35 {
		t.Errorf("Level 1 should be 10 hits in 35s, got %d in %v", cfg.Target(1), cfg.TimeBudget(1))
	}
	if cfg.Target(2) != 20 || cfg.TimeBudget(2) != 70 {
		t.Errorf("Level 2 should be 20 hits in 70s, got %d in %v", cfg.Target(2), cfg.TimeBudget(2))
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	cfg := DefaultSlicerConfig()
	prev := cfg.LevelDifficulty(1)

	for level := 1; level <= cfg.Levels.MaxLevel; level++ {
		d := cfg.LevelDifficulty(level)

		if d.MinSpeed < prev.MinSpeed || d.MaxSpeed < prev.MaxSpeed {
			t.Errorf("Level %d: speed range decreased: %+v after %+v", level, d, prev)
		}
		if d.SpawnRate < prev.SpawnRate {
			t.Errorf("Level %d: spawn rate decreased: %v after %v", level, d.SpawnRate, prev.SpawnRate)
		}
		if d.RotationSpeed < prev.RotationSpeed {
			t.Errorf("Level %d: rotation decreased: %v after %v", level, d.RotationSpeed, prev.RotationSpeed)
		}
		if d.SpawnRate > cfg.Difficulty.Spawn.Ceiling {
			t.Errorf("Level %d: spawn rate %v exceeds ceiling %v", level, d.SpawnRate, cfg.Difficulty.Spawn.Ceiling)
		}
		if d.MaxSpeed < d.MinSpeed {
			t.Errorf("Level %d: max speed %v below min %v", level, d.MaxSpeed, d.MinSpeed)
		}
		if d.MaxSpeed > cfg.Difficulty.Speed.Max {
			t.Errorf("Level %d: max speed %v exceeds cap", level, d.MaxSpeed)
		}
		prev = d
	}

	// The default curve reaches the ceiling well before the last level
	if last := cfg.LevelDifficulty(cfg.Levels.MaxLevel); last.SpawnRate != cfg.Difficulty.Spawn.Ceiling {
		t.Errorf("Spawn rate at max level = %v, expected ceiling %v", last.SpawnRate, cfg.Difficulty.Spawn.Ceiling)
	}
}

func TestDifficultyBelowLevelOne(t *testing.T) {
	cfg := DefaultSlicerConfig()
	if cfg.LevelDifficulty(0) != cfg.LevelDifficulty(1) {
		t.Error("Levels below 1 should clamp to level 1")
	}
}

func TestSpawnChance(t *testing.T) {
	// At exactly one 60 Hz frame the chance equals the rate
	if got := SpawnChance(0.05, 1.0/60); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("SpawnChance(0.05, 1/60) = %v, expected 0.05", got)
	}
	// Two frames worth of time
	want := 1 - 0.95*0.95
	if got := SpawnChance(0.05, 2.0/60); math.Abs(got-want) > 1e-9 {
		t.Errorf("SpawnChance(0.05, 2/60) = %v, expected %v", got, want)
	}
	if SpawnChance(0, 1) != 0 || SpawnChance(0.5, 0) != 0 {
		t.Error("Zero rate or zero dt should never spawn")
	}
	if SpawnChance(1, 0.001) != 1 {
		t.Error("Rate 1 should always spawn")
	}
}

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	var fromYAML SlicerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultSlicerConfig()) {
		t.Errorf("embedded YAML and DefaultSlicerConfig() differ:\nyaml: %+v\ngo:   %+v", fromYAML, DefaultSlicerConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultSlicerConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SlicerConfig)
		substr string
	}{
		{"zero sim rate", func(c *SlicerConfig) { c.Field.SimRate = 0 }, "sim_rate"},
		{"zero max level", func(c *SlicerConfig) { c.Levels.MaxLevel = 0 }, "max_level"},
		{"zero fire interval", func(c *SlicerConfig) { c.Player.FireInterval = 0 }, "fire_interval"},
		{"empty palette", func(c *SlicerConfig) { c.Fruit.Palette = nil }, "palette"},
		{"multi-rune glyph", func(c *SlicerConfig) { c.Fruit.Palette = []string{"ab"} }, "single glyph"},
		{"ceiling above one", func(c *SlicerConfig) { c.Difficulty.Spawn.Ceiling = 1.5 }, "ceiling"},
		{"inverted sizes", func(c *SlicerConfig) { c.Fruit.MaxSize = 1 }, "max_size"},
		{"negative increment", func(c *SlicerConfig) { c.Difficulty.Speed.PerLevelMin = -1 }, "per-level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSlicerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q should mention %q", err, tc.substr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("levels:\n  max_level: 5\nplayer:\n  fire_interval: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Levels.MaxLevel != 5 {
		t.Errorf("MaxLevel = %d, expected 5", cfg.Levels.MaxLevel)
	}
	if cfg.Player.FireInterval != 0.5 {
		t.Errorf("FireInterval = %v, expected 0.5", cfg.Player.FireInterval)
	}
	// Untouched keys keep defaults
	if cfg.Levels.HitsPerLevel != 10 {
		t.Errorf("HitsPerLevel = %d, expected default 10", cfg.Levels.HitsPerLevel)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("levels:\n  max_level: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() of invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultSlicerConfig()

	easy := DefaultSlicerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Difficulty.Spawn.Ceiling >= base.Difficulty.Spawn.Ceiling {
		t.Error("Easy should lower the spawn ceiling")
	}
	if easy.LevelDifficulty(10).MaxSpeed >= base.LevelDifficulty(10).MaxSpeed {
		t.Error("Easy should slow fruit down")
	}

	hard := DefaultSlicerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.LevelDifficulty(10).SpawnRate <= base.LevelDifficulty(10).SpawnRate {
		t.Error("Hard should spawn more fruit")
	}

	fixed := DefaultSlicerConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.LevelDifficulty(30) != fixed.LevelDifficulty(1) {
		t.Error("Fixed should keep level 1 difficulty throughout")
	}

	// Objectives never change
	for _, cfg := range []SlicerConfig{easy, hard, fixed} {
		if cfg.Target(3) != base.Target(3) || cfg.TimeBudget(3) != base.TimeBudget(3) {
			t.Error("Presets must not change level targets or time budgets")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset config should validate: %v", err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSlicerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parse(data, "marshaled")
	if err != nil {
		t.Fatalf("marshaled config should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSlicerConfig()) {
		t.Error("Marshal output should decode back to the same config")
	}
}

func TestGlyph(t *testing.T) {
	if Glyph("🍎") != '🍎' {
		t.Error("Glyph should return the first rune")
	}
	if Glyph("") != '?' {
		t.Error("Glyph of empty string should be '?'")
	}
	runes := DefaultSlicerConfig().PaletteRunes()
	if len(runes) != 12 || runes[0] != '🍎' {
		t.Errorf("PaletteRunes() = %q", string(runes))
	}
}
