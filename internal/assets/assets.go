// Package assets resolves the glyphs games draw with. Sprites come from a
// YAML atlas read once at startup; anything missing or broken falls back to
// a fixed placeholder per category, so games never see a loading failure.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cave-loot/internal/core"
	"github.com/vovakirdan/cave-loot/internal/inventory"
)

//go:embed default.yaml
var defaultAtlasYAML []byte

var (
	// ErrNotFound is returned when the atlas file does not exist.
	ErrNotFound = errors.New("assets: atlas not found")
	// ErrDecode is returned when the atlas cannot be parsed.
	ErrDecode = errors.New("assets: atlas decode failed")
)

// Sprite is one glyph with its color.
type Sprite struct {
	Glyph rune
	Color core.Color
}

// Atlas maps every category to a sprite and holds the animation frames for
// the player and enemies. The category table is closed: it always has an
// entry for each of the four categories.
type Atlas struct {
	items  [len(inventory.Categories)]Sprite
	player []Sprite
	enemy  []Sprite
}

var placeholders = [len(inventory.Categories)]Sprite{
	inventory.Resources:    {Glyph: '●', Color: core.ColorYellow},
	inventory.DungeonProps: {Glyph: '■', Color: core.ColorOrange},
	inventory.Esoteric:     {Glyph: '▲', Color: core.ColorMagenta},
	inventory.Tools:        {Glyph: '♦', Color: core.ColorCyan},
}

var (
	placeholderPlayer = []Sprite{{Glyph: '@', Color: core.ColorWhite}}
	placeholderEnemy  = []Sprite{{Glyph: 'O', Color: core.ColorGreen}}
)

// Placeholder returns the fallback sprite for a category.
func Placeholder(c inventory.Category) Sprite {
	if !c.Valid() {
		return placeholders[inventory.Resources]
	}
	return placeholders[c]
}

// Placeholders returns an atlas made only of fallback sprites.
func Placeholders() *Atlas {
	return &Atlas{items: placeholders, player: placeholderPlayer, enemy: placeholderEnemy}
}

// Item returns the sprite for a category.
func (a *Atlas) Item(c inventory.Category) Sprite {
	if !c.Valid() {
		return Placeholder(c)
	}
	return a.items[c]
}

// Player returns the run-cycle frame, wrapping modulo the frame count.
func (a *Atlas) Player(frame int) Sprite {
	return pick(a.player, frame)
}

// Enemy returns the patrol frame, wrapping modulo the frame count.
func (a *Atlas) Enemy(frame int) Sprite {
	return pick(a.enemy, frame)
}

func pick(frames []Sprite, i int) Sprite {
	n := len(frames)
	return frames[((i%n)+n)%n]
}

type spriteYAML struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

type atlasYAML struct {
	Categories map[string]spriteYAML `yaml:"categories"`
	Player     []spriteYAML          `yaml:"player"`
	Enemy      []spriteYAML          `yaml:"enemy"`
}

// Load reads the named atlas from fsys. Any failure is logged and replaced
// by placeholders; Load never fails. A nil fsys loads the built-in atlas.
func Load(fsys fs.FS, name string, logger *log.Logger) *Atlas {
	if logger == nil {
		logger = log.Default()
	}
	var (
		atlas *Atlas
		err   error
	)
	if fsys == nil {
		atlas, err = Decode(defaultAtlasYAML, logger)
	} else {
		atlas, err = Open(fsys, name, logger)
	}
	if err != nil {
		logger.Warn("using placeholder sprites", "atlas", name, "error", err)
		return Placeholders()
	}
	return atlas
}

// Open reads and decodes an atlas file.
func Open(fsys fs.FS, name string, logger *log.Logger) (*Atlas, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return Decode(data, logger)
}

// Decode parses atlas YAML. Individual bad entries are logged and replaced
// by their placeholder; only an unparseable document is an error.
func Decode(data []byte, logger *log.Logger) (*Atlas, error) {
	if logger == nil {
		logger = log.Default()
	}
	var raw atlasYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	atlas := Placeholders()
	for name, sy := range raw.Categories {
		cat, err := inventory.ParseCategory(name)
		if err != nil {
			logger.Warn("unknown sprite category", "category", name)
			continue
		}
		sprite, err := sy.sprite()
		if err != nil {
			logger.Warn("bad sprite, using placeholder", "category", cat, "error", err)
			continue
		}
		atlas.items[cat] = sprite
	}
	if frames := decodeFrames(raw.Player, "player", logger); len(frames) > 0 {
		atlas.player = frames
	}
	if frames := decodeFrames(raw.Enemy, "enemy", logger); len(frames) > 0 {
		atlas.enemy = frames
	}
	return atlas, nil
}

func decodeFrames(in []spriteYAML, entity string, logger *log.Logger) []Sprite {
	out := make([]Sprite, 0, len(in))
	for i, sy := range in {
		sprite, err := sy.sprite()
		if err != nil {
			logger.Warn("bad frame skipped", "entity", entity, "frame", i, "error", err)
			continue
		}
		out = append(out, sprite)
	}
	return out
}

func (s spriteYAML) sprite() (Sprite, error) {
	if utf8.RuneCountInString(s.Glyph) != 1 {
		return Sprite{}, fmt.Errorf("glyph %q must be a single character", s.Glyph)
	}
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(s.Color))]
	if !ok {
		return Sprite{}, fmt.Errorf("unknown color %q", s.Color)
	}
	return Sprite{Glyph: r, Color: c}, nil
}

var colorNames = map[string]core.Color{
	"":              core.ColorDefault,
	"default":       core.ColorDefault,
	"red":           core.ColorRed,
	"green":         core.ColorGreen,
	"yellow":        core.ColorYellow,
	"blue":          core.ColorBlue,
	"magenta":       core.ColorMagenta,
	"cyan":          core.ColorCyan,
	"white":         core.ColorWhite,
	"bright_red":    core.ColorBrightRed,
	"bright_green":  core.ColorBrightGreen,
	"bright_yellow": core.ColorBrightYellow,
	"bright_cyan":   core.ColorBrightCyan,
	"orange":        core.ColorOrange,
	"gray":          core.ColorGray,
	"brown":         core.ColorBrown,
}
