package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Line is a line of colored text.
type Line struct {
	Text  string
	Color core.Color
}

// Segment is one body block with its display color.
type Segment struct {
	Cell  core.Cell
	Color core.Color
}

// Frame describes what to draw for the current tick. It is independent of
// the drawing surface.
type Frame struct {
	Board      Board
	Phase      Phase
	Apple      core.Cell
	HasApple   bool
	AppleColor core.Color
	Segments   []Segment // Head first
	HUD        []Line    // Side panel
	Overlay    []Line    // Menu, color select or game over box
}

// Layout constants, in terminal cells.
const (
	cellCols   = 2  // Columns per block, so blocks look square
	panelWidth = 22 // Side panel including its left margin
)

// Frame builds the rendering description.
func (g *Game) Frame() Frame {
	f := Frame{
		Board:      g.Board(),
		Phase:      g.phase,
		Apple:      g.apple,
		HasApple:   g.hasApple,
		AppleColor: g.appleColor(),
	}

	inRun := g.phase == PhasePlaying || g.phase == PhaseGameOver
	if inRun {
		f.Segments = make([]Segment, len(g.snake))
		for i, c := range g.snake {
			f.Segments[i] = Segment{Cell: c, Color: g.segmentColor(i, len(g.snake))}
		}
	} else {
		f.HasApple = false
	}

	if g.variant.HUD && inRun {
		f.HUD = []Line{
			{Text: fmt.Sprintf("High Score: %d", g.highScore), Color: core.ColorPanel},
			{Text: fmt.Sprintf("Score: %d", g.score), Color: core.ColorPanel},
			{Text: fmt.Sprintf("Time: %d", int(g.Elapsed().Seconds())), Color: core.ColorPanel},
		}
		if g.muted {
			f.HUD = append(f.HUD, Line{Text: "Music: off", Color: core.ColorGray})
		}
	}

	switch g.phase {
	case PhaseMenu:
		f.Overlay = g.menuLines()
	case PhaseColorSelect:
		f.Overlay = g.colorSelectLines()
	case PhaseGameOver:
		f.Overlay = g.gameOverLines()
	}
	return f
}

// segmentColor interpolates from the palette's start color at the head to its
// end color at the tail.
func (g *Game) segmentColor(i, n int) core.Color {
	if !g.variant.Gradient || n <= 1 {
		return g.palette.Start
	}
	return core.Lerp(g.palette.Start, g.palette.End, float64(i)/float64(n-1))
}

// appleColor keeps the apple distinguishable from a red snake.
func (g *Game) appleColor() core.Color {
	if g.palette.Start == core.ColorRed {
		return core.ColorGreen
	}
	return core.ColorRed
}

func (g *Game) menuLines() []Line {
	lines := []Line{
		{Text: g.variant.Title, Color: core.ColorGreen},
		{Text: "", Color: core.ColorDefault},
		{Text: "Press any key to start", Color: core.ColorWhite},
	}
	if g.variant.HighScore {
		lines = append(lines,
			Line{Text: "Press 'Del' to start with reset High Score", Color: core.ColorWhite},
			Line{Text: fmt.Sprintf("High Score: %d", g.highScore), Color: core.ColorYellow},
		)
	}
	return append(lines, Line{Text: "Press 'Esc' to quit", Color: core.ColorGray})
}

func (g *Game) colorSelectLines() []Line {
	lines := []Line{
		{Text: "Select Snake Color", Color: core.ColorWhite},
		{Text: "", Color: core.ColorDefault},
	}
	for _, p := range g.palettes {
		lines = append(lines, Line{
			Text:  fmt.Sprintf("Press '%s' for %s", strings.ToUpper(p.Key), p.Name),
			Color: p.Start,
		})
	}
	return lines
}

func (g *Game) gameOverLines() []Line {
	lines := []Line{{Text: "Game Over!", Color: core.ColorRed}}
	if g.variant.HighScore {
		lines = append(lines, Line{Text: fmt.Sprintf("High Score: %d", g.highScore), Color: core.ColorYellow})
	}
	lines = append(lines,
		Line{Text: fmt.Sprintf("Your Score: %d", g.score), Color: core.ColorGreen},
		Line{Text: ElapsedText(int(g.Elapsed().Seconds())), Color: core.ColorBlue},
		Line{Text: "", Color: core.ColorDefault},
	)
	help := "Press 'R' to Restart | 'Q' to Quit"
	if g.variant.ColorSelect {
		help = "Press 'R' to Restart | 'C' to change color | 'Q' to Quit"
	}
	return append(lines, Line{Text: help, Color: core.ColorWhite})
}

// ElapsedText formats the game over time line.
func ElapsedText(seconds int) string {
	if seconds == 1 {
		return "Total Elapsed Time: 1 second"
	}
	return fmt.Sprintf("Total Elapsed Time: %d seconds", seconds)
}

// Size returns the screen size needed to draw the board and panel.
func (g *Game) Size() (w, h int) {
	w = g.variant.Width*cellCols + 2
	if g.variant.HUD {
		w += panelWidth
	}
	return w, g.variant.Height + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	needW, needH := g.Size()
	if dst.Width() < needW || dst.Height() < needH {
		g.renderTooSmall(dst, needW, needH)
		return
	}

	f := g.Frame()
	boardW := f.Board.Width*cellCols + 2
	ox := (dst.Width() - needW) / 2
	oy := (dst.Height() - needH) / 2

	// Border and dotted grid
	dst.DrawBox(core.NewRect(ox, oy, boardW, needH), core.ColorGray)
	for y := range f.Board.Height {
		for x := range f.Board.Width {
			sx, sy := g.cellOrigin(ox, oy, core.Cell{X: x, Y: y})
			dst.SetColored(sx, sy, '·', core.ColorGray)
		}
	}

	if f.HasApple {
		sx, sy := g.cellOrigin(ox, oy, f.Apple)
		dst.SetColored(sx, sy, '▐', f.AppleColor)
		dst.SetColored(sx+1, sy, '▌', f.AppleColor)
	}

	// Tail first so the head stays on top
	for i := len(f.Segments) - 1; i >= 0; i-- {
		s := f.Segments[i]
		if !f.Board.Contains(s.Cell) {
			continue
		}
		sx, sy := g.cellOrigin(ox, oy, s.Cell)
		dst.SetColored(sx, sy, '█', s.Color)
		dst.SetColored(sx+1, sy, '█', s.Color)
	}

	for i, line := range f.HUD {
		dst.DrawTextColored(ox+boardW+2, oy+1+i*2, line.Text, line.Color)
	}

	if len(f.Overlay) > 0 {
		renderOverlay(dst, f.Overlay)
	}
}

// cellOrigin maps a board cell to the screen position of its first column.
func (g *Game) cellOrigin(ox, oy int, c core.Cell) (int, int) {
	return ox + 1 + c.X*cellCols, oy + 1 + c.Y
}

func (g *Game) renderTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorWhite)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorGray)
}

// renderOverlay draws lines in a box centered on the screen. Text is clipped
// to the inside of the border.
func renderOverlay(dst *core.Screen, lines []Line) {
	maxLen := 0
	for _, l := range lines {
		maxLen = core.Max(maxLen, len([]rune(l.Text)))
	}
	boxW := core.Clamp(maxLen+4, 2, dst.Width())
	boxH := core.Clamp(len(lines)+2, 2, dst.Height())
	box := dst.Bounds().Centered(boxW, boxH)
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)
	for i, l := range lines {
		y := inner.Y + i
		x := core.Max(inner.X, box.X+(box.W-len([]rune(l.Text)))/2)
		for _, r := range l.Text {
			if inner.Contains(x, y) {
				dst.SetColored(x, y, r, l.Color)
			}
			x++
		}
	}
}
