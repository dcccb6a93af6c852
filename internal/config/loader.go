package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigDir is searched relative to the working directory.
const localConfigDir = "configs"

// LoadRiff loads the riff configuration.
// Search order: customPath -> ~/.riffrun/configs/riff.yaml -> ./configs/riff.yaml -> embedded default.
// Files are overlaid on the built-in defaults, so a partial file only
// overrides the keys it sets. The result is validated.
func LoadRiff(customPath string) (RiffConfig, error) {
	cfg, err := loadRiff(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadRiff(customPath string) (RiffConfig, error) {
	cfg := DefaultRiffConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local one
	for _, path := range []string{userConfigPath("riff.yaml"), filepath.Join(localConfigDir, "riff.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultRiffConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRiffYAML, &cfg); err != nil {
		return DefaultRiffConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".riffrun", "configs", filename)
}

// ApplyRiffPreset modifies the config based on a difficulty preset.
func ApplyRiffPreset(cfg *RiffConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust the ramp and the starting pressure
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SecondsPerLevel = 45
		cfg.Difficulty.IntervalStep = 1.0
		cfg.Difficulty.MinInterval = 90
		cfg.Zombies.Initial = 1
	case DifficultyHard:
		cfg.Difficulty.SecondsPerLevel = 20
		cfg.Difficulty.BaseInterval = 110
		cfg.Difficulty.IntervalStep = 2.0
		cfg.Difficulty.MinInterval = 50
		cfg.Zombies.Initial = 3
	}
}
