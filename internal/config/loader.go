package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under $HOME holding configs, the score
// database and the log file.
const AppDir = ".caveloot"

// LoadLoot loads Cave Loot Challenge configuration.
// Search order: customPath -> ~/.caveloot/configs/loot.yaml -> ./configs/loot.yaml -> embedded default
func LoadLoot(customPath string) (LootConfig, error) {
	return load("loot", customPath, defaultLootYAML, DefaultLootConfig)
}

// LoadCave loads Cave Adventure configuration.
// Search order: customPath -> ~/.caveloot/configs/cave.yaml -> ./configs/cave.yaml -> embedded default
func LoadCave(customPath string) (CaveConfig, error) {
	return load("cave", customPath, defaultCaveYAML, DefaultCaveConfig)
}

// validatable is implemented by every game config.
type validatable interface {
	Validate() error
}

// load walks the search order. An explicit path must exist and parse; the
// implicit locations are skipped silently when missing or broken.
func load[T validatable](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		cfg, err := readFile(customPath, fallback)
		if err != nil {
			var zero T
			return zero, err
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if p := UserConfigPath(filename); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := readFile(path, fallback); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readFile decodes a YAML file over the hardcoded defaults so partial files
// only override what they mention.
func readFile[T validatable](path string, fallback func() T) (T, error) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyLootPreset adjusts the backpack to a difficulty preset.
func ApplyLootPreset(cfg *LootConfig, preset DifficultyPreset) {
	cfg.Backpack.Capacity = capacityForPreset(cfg.Backpack.Capacity, preset)
}

// ApplyCavePreset adjusts capacity, orc count and orc speed progression.
// The fixed preset only turns progression off.
func ApplyCavePreset(cfg *CaveConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Backpack.Capacity = capacityForPreset(cfg.Backpack.Capacity, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = max(cfg.Enemies.Count-1, 0)
	case DifficultyHard:
		cfg.Enemies.Count++
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

func capacityForPreset(base int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return base + base/5
	case DifficultyHard:
		return base - base/5
	default:
		return base
	}
}
