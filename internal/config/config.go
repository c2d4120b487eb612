// Package config provides YAML-based configuration loading for the snake game:
// rule-variant overrides, the color palette, audio levels and file locations.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all user-tunable settings.
type SnakeConfig struct {
	Variants map[string]VariantConfig `yaml:"variants"`
	Palette  []PaletteEntry           `yaml:"palette"`
	Audio    AudioConfig              `yaml:"audio"`
	Paths    PathsConfig              `yaml:"paths"`
}

// VariantConfig overrides a built-in rule variant. Zero values keep the
// built-in setting.
type VariantConfig struct {
	Width         int         `yaml:"width"`
	Height        int         `yaml:"height"`
	Start         *CellConfig `yaml:"start"`
	TickRate      int         `yaml:"tick_rate"`
	NeckExemption *bool       `yaml:"neck_exemption"`
	SpawnAttempts int         `yaml:"spawn_attempts"`
}

// CellConfig is a grid position in blocks.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Cell converts to a core.Cell.
func (c CellConfig) Cell() core.Cell {
	return core.Cell{X: c.X, Y: c.Y}
}

// PaletteEntry is one selectable snake color: a head-to-tail gradient.
type PaletteEntry struct {
	Name  string   `yaml:"name"`
	Key   string   `yaml:"key"`
	Start HexColor `yaml:"start"`
	End   HexColor `yaml:"end"`
}

// AudioConfig defines playback levels. Volumes are linear gains in [0, 1].
type AudioConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MusicVolume float64       `yaml:"music_volume"`
	Effects     EffectVolumes `yaml:"effects"`
}

// EffectVolumes holds per-cue gains.
type EffectVolumes struct {
	Move      float64 `yaml:"move"`
	Eat       float64 `yaml:"eat"`
	HighScore float64 `yaml:"high_score"`
	GameOver  float64 `yaml:"game_over"`
}

// PathsConfig locates the files the game writes. "~" expands to the home
// directory.
type PathsConfig struct {
	HighScore string `yaml:"high_score"`
	Database  string `yaml:"database"`
	Log       string `yaml:"log"`
}

// HexColor is a "#rrggbb" string.
type HexColor string

// Color parses the hex string.
func (h HexColor) Color() (core.Color, error) {
	s := strings.TrimPrefix(string(h), "#")
	if len(s) != 6 {
		return core.ColorDefault, fmt.Errorf("config: invalid color %q", string(h))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return core.ColorDefault, fmt.Errorf("config: invalid color %q: %w", string(h), err)
	}
	return core.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Validate reports the first inconsistent setting.
func (c SnakeConfig) Validate() error {
	for id, v := range c.Variants {
		if v.Width < 0 || v.Height < 0 {
			return fmt.Errorf("config: variant %s: negative grid size", id)
		}
		if v.TickRate < 0 {
			return fmt.Errorf("config: variant %s: negative tick rate", id)
		}
		if v.Start != nil && (v.Start.X < 0 || v.Start.Y < 0) {
			return fmt.Errorf("config: variant %s: negative start cell", id)
		}
		if v.Start != nil && v.Width > 0 && v.Height > 0 && !v.Start.Cell().In(v.Width, v.Height) {
			return fmt.Errorf("config: variant %s: start (%d,%d) outside %dx%d grid",
				id, v.Start.X, v.Start.Y, v.Width, v.Height)
		}
	}

	keys := make(map[string]string)
	for _, p := range c.Palette {
		if p.Key == "" {
			return fmt.Errorf("config: palette %q has no key", p.Name)
		}
		k := strings.ToLower(p.Key)
		if other, dup := keys[k]; dup {
			return fmt.Errorf("config: palette key %q used by %q and %q", p.Key, other, p.Name)
		}
		keys[k] = p.Name
		if _, err := p.Start.Color(); err != nil {
			return err
		}
		if _, err := p.End.Color(); err != nil {
			return err
		}
	}

	for name, v := range map[string]float64{
		"music_volume":       c.Audio.MusicVolume,
		"effects.move":       c.Audio.Effects.Move,
		"effects.eat":        c.Audio.Effects.Eat,
		"effects.high_score": c.Audio.Effects.HighScore,
		"effects.game_over":  c.Audio.Effects.GameOver,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: audio %s = %v, expected [0, 1]", name, v)
		}
	}
	return nil
}

// SpeedPreset represents a named tick rate.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// TickRateForPreset returns the ticks per second for a preset.
// An empty preset returns 0 so the variant's own rate stays in effect.
func TickRateForPreset(preset SpeedPreset) (int, error) {
	switch preset {
	case SpeedSlow:
		return 8, nil
	case SpeedNormal:
		return 10, nil
	case SpeedFast:
		return 12, nil
	case "":
		return 0, nil
	default:
		return 0, fmt.Errorf("config: unknown speed %q (want slow, normal or fast)", preset)
	}
}
