package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "slicer.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.slicer/configs/slicer.yaml -> ./configs/slicer.yaml -> embedded default.
// Keys missing from a file keep their default values. The result is validated.
func Load(customPath string) (SlicerConfig, error) {
	// Custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SlicerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Unreadable or broken optional files fall through to the next source
	candidates := []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultSlicerYAML, "embedded default")
	if err != nil {
		return DefaultSlicerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte, source string) (SlicerConfig, error) {
	cfg := DefaultSlicerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SlicerConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return SlicerConfig{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slicer", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Level targets and time budgets are never changed by a preset.
func ApplyPreset(cfg *SlicerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Speed.PerLevelMin = 0
		cfg.Difficulty.Speed.PerLevelMax = 0
		cfg.Difficulty.Spawn.PerLevel = 0
		cfg.Difficulty.Rotation.PerLevel = 0
		return
	}

	scale := presetScale(preset)
	if scale == 1.0 {
		return
	}

	sp := &cfg.Difficulty.Speed
	sp.BaseMin *= scale
	sp.BaseMax *= scale
	sp.PerLevelMin *= scale
	sp.PerLevelMax *= scale
	sp.Max *= scale

	spawn := &cfg.Difficulty.Spawn
	spawn.Base *= scale
	spawn.PerLevel *= scale
	spawn.Ceiling = min(spawn.Ceiling*scale, 1.0)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SlicerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
