package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cave-loot/internal/inventory"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cave CaveConfig
	if err := yaml.Unmarshal(GetDefaultYAML("cave"), &cave); err != nil {
		t.Fatalf("embedded cave.yaml: %v", err)
	}
	want := DefaultCaveConfig()
	if cave.World != want.World || cave.Physics != want.Physics || cave.Player != want.Player {
		t.Errorf("cave world/physics/player differ from hardcoded defaults")
	}
	if cave.Enemies != want.Enemies || cave.Scoring != want.Scoring || cave.Difficulty != want.Difficulty {
		t.Errorf("cave enemies/scoring/difficulty differ from hardcoded defaults")
	}
	if len(cave.Platforms) != len(want.Platforms) {
		t.Fatalf("platforms = %d, want %d", len(cave.Platforms), len(want.Platforms))
	}
	for i := range want.Platforms {
		if cave.Platforms[i] != want.Platforms[i] {
			t.Errorf("platform %d = %+v, want %+v", i, cave.Platforms[i], want.Platforms[i])
		}
	}
	if err := cave.Validate(); err != nil {
		t.Errorf("embedded cave config invalid: %v", err)
	}

	var loot LootConfig
	if err := yaml.Unmarshal(GetDefaultYAML("loot"), &loot); err != nil {
		t.Fatalf("embedded loot.yaml: %v", err)
	}
	catalog, err := loot.BuildCatalog()
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	if got, want := catalog.Items(), inventory.DefaultCatalog().Items(); len(got) != len(want) {
		t.Fatalf("catalog has %d items, want %d", len(got), len(want))
	} else {
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cave.yaml")
	data := []byte("enemies:\n  count: 5\nbackpack:\n  capacity: 30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCave(path)
	if err != nil {
		t.Fatalf("LoadCave: %v", err)
	}
	if cfg.Enemies.Count != 5 || cfg.Backpack.Capacity != 30 {
		t.Errorf("overrides not applied: enemies=%d capacity=%d", cfg.Enemies.Count, cfg.Backpack.Capacity)
	}
	if cfg.Physics.Gravity != 1 || cfg.Enemies.Width != 60 {
		t.Errorf("unset fields should keep defaults, got gravity=%d width=%d", cfg.Physics.Gravity, cfg.Enemies.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLoot(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("backpack: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLoot(broken); err == nil {
		t.Error("expected parse error")
	}

	zeroWeight := filepath.Join(dir, "zero.yaml")
	data := []byte("catalog:\n  - {name: Dust, value: 1, weight: 0, category: Resources}\n")
	if err := os.WriteFile(zeroWeight, data, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadLoot(zeroWeight)
	if !errors.Is(err, ErrInvalid) || !errors.Is(err, inventory.ErrInvalidItem) {
		t.Errorf("zero-weight item error = %v, want ErrInvalid wrapping ErrInvalidItem", err)
	}
}

func TestCaveValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CaveConfig)
	}{
		{"zero world", func(c *CaveConfig) { c.World.Width = 0 }},
		{"no gravity", func(c *CaveConfig) { c.Physics.Gravity = 0 }},
		{"inverted value range", func(c *CaveConfig) { c.Pickups.ValueMin = 40 }},
		{"zero weight", func(c *CaveConfig) { c.Pickups.WeightMin = 0 }},
		{"no frames", func(c *CaveConfig) { c.Enemies.Frames = 0 }},
		{"flat platform", func(c *CaveConfig) { c.Platforms[1].H = 0 }},
		{"no capacity", func(c *CaveConfig) { c.Backpack.Capacity = 0 }},
		{"negative stomp bonus", func(c *CaveConfig) { c.Scoring.Stomp = -1 }},
		{"unknown progression", func(c *CaveConfig) { c.Difficulty.Progression.Type = "lunar" }},
		{"player wider than world", func(c *CaveConfig) { c.Player.Width = 900 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCaveConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidateNamesField(t *testing.T) {
	cfg := DefaultCaveConfig()
	cfg.Physics.LandingBand = 0
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "LandingBand") {
		t.Errorf("Validate() = %v, want the failing field named", err)
	}
}

func TestApplyCavePreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		capacity     int
		enemies      int
		progression  bool
		initialLevel float64
	}{
		{DifficultyEasy, 60, 2, true, 0.0},
		{DifficultyNormal, 50, 3, true, 0.3},
		{DifficultyHard, 40, 4, true, 0.7},
		{DifficultyFixed, 50, 3, false, 0.0},
		{"", 50, 3, false, 0.0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCaveConfig()
			ApplyCavePreset(&cfg, tc.preset)
			if cfg.Backpack.Capacity != tc.capacity {
				t.Errorf("capacity = %d, want %d", cfg.Backpack.Capacity, tc.capacity)
			}
			if cfg.Enemies.Count != tc.enemies {
				t.Errorf("enemies = %d, want %d", cfg.Enemies.Count, tc.enemies)
			}
			if cfg.Difficulty.Enabled != tc.progression {
				t.Errorf("progression = %v, want %v", cfg.Difficulty.Enabled, tc.progression)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DefaultCaveConfig().Difficulty

	dm := NewDifficultyManager(cfg)
	if got := dm.Speed(2, 1000, 0); got != 2 {
		t.Errorf("disabled progression speed = %d, want 2", got)
	}

	cfg.Enabled = true
	cfg.InitialLevel = 0.7
	dm = NewDifficultyManager(cfg)
	if got := dm.Speed(2, 0, 0); got != 3 {
		t.Errorf("hard start speed = %d, want 3", got)
	}
	if got := dm.Speed(2, 400, 0); got != 3 {
		t.Errorf("speed past max_at = %d, want 3", got)
	}

	cfg.InitialLevel = 0
	dm = NewDifficultyManager(cfg)
	if got := dm.Level(100, 0); got != 0.5 {
		t.Errorf("level at half of max_at = %v, want 0.5", got)
	}
}
