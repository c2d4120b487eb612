package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	// Styling must not change the visible text or width.
	for i, want := range []string{"abcd  ", "plain "} {
		if w := lipgloss.Width(lines[i]); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
		if !strings.Contains(stripANSI(lines[i]), want) {
			t.Errorf("line %d = %q, want %q", i, stripANSI(lines[i]), want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(empty) = %q, want empty", out)
	}
}

func TestStyleFor(t *testing.T) {
	if fg := styleFor(core.ColorDefault).GetForeground(); fg != (lipgloss.NoColor{}) {
		t.Errorf("default color foreground = %v, want NoColor", fg)
	}
	if fg := styleFor(core.RGB(0x12, 0x34, 0x56)).GetForeground(); fg != lipgloss.Color("#123456") {
		t.Errorf("foreground = %v, want #123456", fg)
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
