package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

func boolPtr(b bool) *bool { return &b }

// DefaultSnakeConfig returns the built-in configuration. It mirrors the
// embedded defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Variants: map[string]VariantConfig{
			"classic": {
				Width:    16,
				Height:   9,
				Start:    &CellConfig{X: 7, Y: 3},
				TickRate: 8,
			},
			"deluxe": {
				Width:         16,
				Height:        16,
				Start:         &CellConfig{X: 7, Y: 7},
				TickRate:      10,
				NeckExemption: boolPtr(false),
			},
		},
		Palette: []PaletteEntry{
			{Name: "Red", Key: "r", Start: "#ff0000", End: "#640000"},
			{Name: "Orange", Key: "o", Start: "#ffa500", End: "#643200"},
			{Name: "Yellow", Key: "y", Start: "#ffff00", End: "#b9a500"},
			{Name: "Green", Key: "g", Start: "#00ff00", End: "#006400"},
			{Name: "Blue", Key: "b", Start: "#0000ff", End: "#000064"},
			{Name: "Purple", Key: "p", Start: "#800080", End: "#400040"},
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.1,
			Effects: EffectVolumes{
				Move:      0.5,
				Eat:       0.8,
				HighScore: 0.15,
				GameOver:  0.2,
			},
		},
		Paths: PathsConfig{
			HighScore: "~/.tui-snake/high_score.txt",
			Database:  "~/.tui-snake/runs.db",
			Log:       "~/.tui-snake/snake.log",
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `snake config`.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
