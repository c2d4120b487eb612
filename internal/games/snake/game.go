// Package snake implements the Snake game: a segmented snake moves on a fixed
// grid, eats apples to grow and score, and dies on the walls or its own body.
package snake

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota // Not moving yet
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-block offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a directional action to a Direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirNone, false
	}
}

// Phase is the session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseColorSelect
	PhasePlaying
	PhaseGameOver
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseColorSelect:
		return "color_select"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// EndReason tells why a run ended.
type EndReason int

const (
	EndNone      EndReason = iota
	EndSelf                // Head ran into the body
	EndWall                // Head left the grid
	EndBoardFull           // No free cell left for an apple
)

func (r EndReason) String() string {
	switch r {
	case EndSelf:
		return "self"
	case EndWall:
		return "wall"
	case EndBoardFull:
		return "board_full"
	default:
		return ""
	}
}

// Game implements the Snake game.
type Game struct {
	variant  Variant
	palettes []Palette
	rng      *rand.Rand
	scores   core.ScoreKeeper
	clock    func() time.Time
	tick     uint64
	phase    Phase

	// Snake state
	snake     []core.Cell // Head at index 0
	direction Direction   // Direction of the last completed move
	nextDir   Direction   // Direction for the next move
	growth    int         // Moves left that keep the tail

	apple    core.Cell
	hasApple bool

	score     int
	highScore int
	endReason EndReason
	startedAt time.Time
	endedAt   time.Time
	palette   Palette
	muted     bool

	lastRun    core.RunSummary
	hasLastRun bool

	// Screen dimensions
	screenW int
	screenH int

	// Output of the current tick
	cues []core.Cue
	err  error
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	v.Width = max(1, v.Width)
	v.Height = max(1, v.Height)
	g := &Game{
		variant:  v,
		palettes: Palettes(),
		palette:  classicPalette,
	}
	if v.ColorSelect && len(g.palettes) > 0 {
		g.palette = g.palettes[0]
	}
	return g
}

func init() {
	registry.Register(Classic.ID, func() registry.Game {
		return New(Configured(Classic))
	})
	registry.Register(Deluxe.ID, func() registry.Game {
		return New(Configured(Deluxe))
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// TickRate returns the variant's native speed.
func (g *Game) TickRate() int {
	return g.variant.TickRate
}

// Reset initializes the session. Variants with a title screen start there;
// the others start a run immediately.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.scores = cfg.Scores
	g.clock = cfg.Clock
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.cues = nil
	g.err = nil
	g.muted = false
	g.hasLastRun = false
	g.snake = nil
	g.hasApple = false
	g.score = 0
	g.highScore = 0
	if g.variant.HighScore && g.scores != nil {
		g.highScore = max(0, g.scores.Load())
	}

	if g.variant.Menu {
		g.phase = PhaseMenu
		return
	}
	g.beginSession()
}

// Resize records a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step applies the key events in arrival order, then advances the snake by
// one block if a run is in progress.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	for _, ev := range input.Events() {
		g.handle(ev)
	}

	if g.phase == PhasePlaying {
		if reason, _ := g.Advance(); reason != EndNone {
			g.endRun(reason)
		}
	}

	res := core.StepResult{State: g.State(), Cues: g.cues, Err: g.err}
	g.cues = nil
	g.err = nil
	return res
}

// handle dispatches one key event on the current phase.
func (g *Game) handle(ev core.KeyEvent) {
	switch g.phase {
	case PhaseMenu:
		// Only Esc leaves the title screen; q starts like any other key.
		switch {
		case ev.Action == core.ActionQuit && ev.Key == menuQuitKey:
			g.phase = PhaseTerminated
		case ev.Action == core.ActionResetHighScore:
			g.highScore = 0
			g.saveHighScore()
			g.beginSession()
		default:
			g.beginSession()
		}

	case PhaseColorSelect:
		if p, ok := g.paletteForKey(ev.Key); ok {
			g.palette = p
			g.startRun()
			return
		}
		if ev.Action == core.ActionQuit {
			g.phase = PhaseTerminated
		}

	case PhasePlaying:
		if d, ok := directionFor(ev.Action); ok {
			if g.Turn(d) {
				g.emit(core.CueMove)
			}
			return
		}
		if ev.Action == core.ActionMute {
			g.toggleMute()
		}

	case PhaseGameOver:
		switch ev.Action {
		case core.ActionRestart:
			g.startRun()
		case core.ActionChangeColor:
			if g.variant.ColorSelect {
				g.phase = PhaseColorSelect
			}
		case core.ActionQuit:
			g.phase = PhaseTerminated
		case core.ActionMute:
			g.toggleMute()
		}

	case PhaseTerminated:
	}
}

// menuQuitKey is the only key that quits from the title screen.
const menuQuitKey = "esc"

// beginSession leaves the title screen.
func (g *Game) beginSession() {
	if g.variant.ColorSelect {
		g.phase = PhaseColorSelect
		return
	}
	g.startRun()
}

// startRun places a fresh one-block snake and apple and resets score and clock.
func (g *Game) startRun() {
	g.snake = []core.Cell{g.variant.Start}
	g.direction = DirNone
	g.nextDir = DirNone
	g.growth = 0
	g.score = 0
	g.endReason = EndNone
	g.startedAt = g.now()
	g.endedAt = time.Time{}
	g.phase = PhasePlaying
	g.emit(core.CueMusicStart)

	if !g.SpawnApple() {
		g.endRun(EndBoardFull)
	}
}

// endRun moves to the game over screen.
func (g *Game) endRun(reason EndReason) {
	g.endReason = reason
	g.endedAt = g.now()
	g.phase = PhaseGameOver

	if g.variant.HighScore && g.score > g.highScore {
		g.highScore = g.score
		g.saveHighScore()
	}

	g.emit(core.CueMusicStop)
	g.emit(core.CueGameOver)

	g.lastRun = core.RunSummary{
		Score:     g.score,
		Length:    len(g.snake),
		Duration:  g.Elapsed(),
		EndReason: reason.String(),
	}
	g.hasLastRun = true
}

// Turn requests a direction change for the next move. A request for the
// reverse of the last completed move is rejected; before the first move any
// direction is accepted.
func (g *Game) Turn(d Direction) bool {
	if d == DirNone {
		return false
	}
	if g.direction != DirNone && d == g.direction.Opposite() {
		return false
	}
	g.nextDir = d
	return true
}

// Advance moves the snake one block. It reports why the run ended, if it
// did, and whether an apple was eaten. Step calls it once per playing tick.
func (g *Game) Advance() (EndReason, bool) {
	if g.nextDir == DirNone || len(g.snake) == 0 {
		return EndNone, false
	}
	g.direction = g.nextDir

	dx, dy := g.direction.Delta()
	newHead := g.snake[0].Add(dx, dy)

	if g.hitsBody(newHead) {
		return EndSelf, false
	}

	if g.growth > 0 {
		g.snake = append(g.snake, core.Cell{})
		g.growth--
	}
	copy(g.snake[1:], g.snake[:len(g.snake)-1])
	g.snake[0] = newHead

	if !g.Board().Contains(newHead) {
		return EndWall, false
	}

	if g.hasApple && newHead == g.apple {
		if !g.eat() {
			return EndBoardFull, true
		}
		return EndNone, true
	}
	return EndNone, false
}

// hitsBody reports whether c is occupied by the snake. With the neck
// exemption, the two segments right behind the head do not count.
func (g *Game) hitsBody(c core.Cell) bool {
	for i, seg := range g.snake {
		if g.variant.NeckExemption && (i == 1 || i == 2) {
			continue
		}
		if seg == c {
			return true
		}
	}
	return false
}

// eat scores the apple under the head and places a new one. It returns false
// when no free cell is left.
func (g *Game) eat() bool {
	g.score++
	g.growth++

	if g.variant.HighScore && g.score > g.highScore {
		g.highScore = g.score
		g.saveHighScore()
		g.emit(core.CueHighScore)
	} else {
		g.emit(core.CueEat)
	}

	return g.SpawnApple()
}

// SpawnApple draws uniformly random cells until one is free of the snake.
// After SpawnAttempts misses it picks uniformly among the free cells, so it
// always terminates; it returns false only when the board is full.
func (g *Game) SpawnApple() bool {
	b := g.Board()
	occupied := make(map[core.Cell]struct{}, len(g.snake))
	for _, c := range g.snake {
		occupied[c] = struct{}{}
	}

	attempts := g.variant.SpawnAttempts
	if attempts <= 0 {
		attempts = 4 * b.Area()
	}
	for range attempts {
		c := core.Cell{X: g.rng.Intn(b.Width), Y: g.rng.Intn(b.Height)}
		if _, taken := occupied[c]; !taken {
			g.apple = c
			g.hasApple = true
			return true
		}
	}

	free := make([]core.Cell, 0, b.Area())
	for _, c := range b.Cells() {
		if _, taken := occupied[c]; !taken {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		g.hasApple = false
		return false
	}
	g.apple = free[g.rng.Intn(len(free))]
	g.hasApple = true
	return true
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	if g.muted {
		g.emit(core.CueMusicMute)
	} else {
		g.emit(core.CueMusicUnmute)
	}
}

// saveHighScore writes the high score immediately. Failures are reported in
// the step result and never interrupt play.
func (g *Game) saveHighScore() {
	if !g.variant.HighScore || g.scores == nil {
		return
	}
	if err := g.scores.Save(g.highScore); err != nil && g.err == nil {
		g.err = err
	}
}

func (g *Game) paletteForKey(key string) (Palette, bool) {
	if key == "" {
		return Palette{}, false
	}
	for _, p := range g.palettes {
		if strings.EqualFold(p.Key, key) {
			return p, true
		}
	}
	return Palette{}, false
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) now() time.Time {
	if g.clock == nil {
		return time.Now()
	}
	return g.clock()
}

// Elapsed returns the time since the run started, frozen at game over.
func (g *Game) Elapsed() time.Duration {
	if g.startedAt.IsZero() {
		return 0
	}
	end := g.endedAt
	if end.IsZero() {
		end = g.now()
	}
	return end.Sub(g.startedAt)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		HighScore:  g.highScore,
		GameOver:   g.phase == PhaseGameOver,
		Terminated: g.phase == PhaseTerminated,
		Phase:      g.phase.String(),
	}
}

// LastRun describes the most recent finished run.
func (g *Game) LastRun() (core.RunSummary, bool) {
	return g.lastRun, g.hasLastRun
}

// Board returns the playing field.
func (g *Game) Board() Board {
	return Board{Width: g.variant.Width, Height: g.variant.Height}
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []core.Cell {
	return append([]core.Cell(nil), g.snake...)
}

// Apple returns the apple position, if one is placed.
func (g *Game) Apple() (core.Cell, bool) {
	return g.apple, g.hasApple
}

// Variant returns the rule set in use.
func (g *Game) Variant() Variant {
	return g.variant
}

// Phase returns the session state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Palette returns the snake's current colors.
func (g *Game) Palette() Palette {
	return g.palette
}

// Muted reports whether background music is muted.
func (g *Game) Muted() bool {
	return g.muted
}
