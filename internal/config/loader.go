package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "skyraid.yaml"

// Load loads the skyraid configuration.
// Search order: customPath -> ~/.skyraid/configs/skyraid.yaml -> ./configs/skyraid.yaml -> embedded default.
// Only an explicit customPath can produce an error; the other locations are
// skipped when missing or malformed.
func Load(customPath string) (SkyraidConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return SkyraidConfig{}, err
		}
		if err := cfg.Validate(); err != nil {
			return SkyraidConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", ConfigFile)}
	if p := userConfigPath(ConfigFile); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		if cfg, err := loadFile(p); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Embedded returns the embedded default configuration, falling back to the
// hardcoded defaults if the embedded document does not parse.
func Embedded() SkyraidConfig {
	cfg := DefaultSkyraidConfig()
	if err := yaml.Unmarshal(defaultSkyraidYAML, &cfg); err != nil {
		return DefaultSkyraidConfig()
	}
	return cfg
}

// loadFile decodes path on top of the hardcoded defaults so partial files
// only override the keys they mention.
func loadFile(path string) (SkyraidConfig, error) {
	cfg := DefaultSkyraidConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SkyraidConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyraid", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SkyraidConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Spawn.StartIntervalMs = 2500
		cfg.Spawn.FloorIntervalMs = 700
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Spawn.StartIntervalMs = 1500
		cfg.Spawn.FloorIntervalMs = 350
	}
}
