package snake

import (
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Variant is a rule set. The two built-ins reflect the plain and the
// feature-complete versions of the game.
type Variant struct {
	ID    string
	Title string

	Width, Height int       // Grid size in blocks
	Start         core.Cell // Head position at run start
	TickRate      int       // Native ticks per second

	Menu          bool // Title screen before the first run
	HighScore     bool // Track and persist the high score
	ColorSelect   bool // Pick a palette before each run
	Gradient      bool // Head-to-tail color gradient
	HUD           bool // Side panel with high score, score and time
	NeckExemption bool // Ignore the two segments behind the head in self-collision

	// SpawnAttempts bounds the random apple draws before falling back to a
	// uniform pick among the free cells. 0 means 4x the cell count.
	SpawnAttempts int
}

// Built-in variants.
var (
	Classic = Variant{
		ID:       "classic",
		Title:    "Snake (Classic)",
		Width:    16,
		Height:   9,
		Start:    core.Cell{X: 7, Y: 3},
		TickRate: 8,
	}

	Deluxe = Variant{
		ID:          "deluxe",
		Title:       "Snake (Deluxe)",
		Width:       16,
		Height:      16,
		Start:       core.Cell{X: 7, Y: 7},
		TickRate:    10,
		Menu:        true,
		HighScore:   true,
		ColorSelect: true,
		Gradient:    true,
		HUD:         true,
	}
)

// Board is the playing field.
type Board struct {
	Width, Height int
}

// Contains reports whether c lies on the board.
func (b Board) Contains(c core.Cell) bool {
	return c.In(b.Width, b.Height)
}

// Area returns the number of cells.
func (b Board) Area() int {
	return b.Width * b.Height
}

// Cells enumerates every cell in row-major order.
func (b Board) Cells() []core.Cell {
	cells := make([]core.Cell, 0, b.Area())
	for y := range b.Height {
		for x := range b.Width {
			cells = append(cells, core.Cell{X: x, Y: y})
		}
	}
	return cells
}

// Palette is a selectable snake color: Start at the head, End at the tail.
type Palette struct {
	Name  string
	Key   string
	Start core.Color
	End   core.Color
}

// DefaultPalettes are the selectable colors when no configuration overrides them.
var DefaultPalettes = []Palette{
	{Name: "Red", Key: "r", Start: core.ColorRed, End: core.RGB(100, 0, 0)},
	{Name: "Orange", Key: "o", Start: core.ColorOrange, End: core.RGB(100, 50, 0)},
	{Name: "Yellow", Key: "y", Start: core.ColorYellow, End: core.RGB(185, 165, 0)},
	{Name: "Green", Key: "g", Start: core.ColorGreen, End: core.RGB(0, 100, 0)},
	{Name: "Blue", Key: "b", Start: core.ColorBlue, End: core.RGB(0, 0, 100)},
	{Name: "Purple", Key: "p", Start: core.ColorPurple, End: core.RGB(64, 0, 64)},
}

// classicPalette is the solid snake of variants without color selection.
var classicPalette = Palette{Name: "Green", Start: core.ColorGreen, End: core.ColorGreen}

// Package-level configuration, set by the CLI before games are created.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultSnakeConfig()
)

// SetConfig replaces the configuration used for newly created games.
func SetConfig(cfg config.SnakeConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// Configured returns base with the configured overrides for its ID applied.
func Configured(base Variant) Variant {
	settingsMu.RLock()
	defer settingsMu.RUnlock()

	vc, ok := settings.Variants[base.ID]
	if !ok {
		return base
	}
	if vc.Width > 0 {
		base.Width = vc.Width
	}
	if vc.Height > 0 {
		base.Height = vc.Height
	}
	if vc.Start != nil {
		base.Start = vc.Start.Cell()
	}
	if vc.TickRate > 0 {
		base.TickRate = vc.TickRate
	}
	if vc.NeckExemption != nil {
		base.NeckExemption = *vc.NeckExemption
	}
	if vc.SpawnAttempts > 0 {
		base.SpawnAttempts = vc.SpawnAttempts
	}
	if !base.Start.In(base.Width, base.Height) {
		base.Start = core.Cell{X: base.Width / 2, Y: base.Height / 2}
	}
	return base
}

// Palettes returns the configured palettes. Entries with unparsable colors
// are skipped; an empty result falls back to DefaultPalettes.
func Palettes() []Palette {
	settingsMu.RLock()
	defer settingsMu.RUnlock()

	out := make([]Palette, 0, len(settings.Palette))
	for _, p := range settings.Palette {
		start, err := p.Start.Color()
		if err != nil {
			continue
		}
		end, err := p.End.Color()
		if err != nil {
			continue
		}
		out = append(out, Palette{Name: p.Name, Key: p.Key, Start: start, End: end})
	}
	if len(out) == 0 {
		return append([]Palette(nil), DefaultPalettes...)
	}
	return out
}
