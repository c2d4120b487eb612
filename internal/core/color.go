package core

import "fmt"

// Color is a foreground color for a screen cell.
// The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	set     bool
}

// ColorDefault leaves the terminal's own foreground color in place.
var ColorDefault = Color{}

// RGB returns a true-color value.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Named colors used by the game screens.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorRed    = RGB(255, 0, 0)
	ColorOrange = RGB(255, 165, 0)
	ColorYellow = RGB(255, 255, 0)
	ColorGreen  = RGB(0, 255, 0)
	ColorBlue   = RGB(0, 0, 255)
	ColorPurple = RGB(128, 0, 128)
	ColorGray   = RGB(128, 128, 128)
	ColorPanel  = RGB(255, 0, 50)
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates each channel from a to b by factor t in [0, 1].
// Channels are truncated toward zero.
func Lerp(a, b Color, t float64) Color {
	t = ClampF(t, 0, 1)
	ch := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGB(ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B))
}
