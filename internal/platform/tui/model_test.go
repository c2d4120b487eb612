package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// stubGame replays scripted step results and records what it was given.
type stubGame struct {
	tickRate int
	results  []core.StepResult
	frames   [][]core.KeyEvent
	resized  [2]int
	resets   int
	run      core.RunSummary
	hasRun   bool
}

func (g *stubGame) ID() string                       { return "stub" }
func (g *stubGame) Title() string                    { return "Stub" }
func (g *stubGame) TickRate() int                    { return g.tickRate }
func (g *stubGame) Reset(core.RuntimeConfig)         { g.resets++ }
func (g *stubGame) Resize(w, h int)                  { g.resized = [2]int{w, h} }
func (g *stubGame) Render(dst *core.Screen)          { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState            { return core.GameState{} }
func (g *stubGame) LastRun() (core.RunSummary, bool) { return g.run, g.hasRun }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Events())
	if len(g.results) == 0 {
		return core.StepResult{}
	}
	res := g.results[0]
	g.results = g.results[1:]
	return res
}

type recordingPlayer struct {
	cues []core.Cue
}

func (p *recordingPlayer) Play(c core.Cue) { p.cues = append(p.cues, c) }
func (p *recordingPlayer) Close()          {}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  40,
		ScreenH:  12,
		TickRate: 1000,
		Seed:     1,
		Clock:    func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Now()))
	return next.(Model), cmd
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Deps{})
	m.Init()

	next, _ := m.Update(runeKey('w'))
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if len(game.frames) != 0 {
		t.Fatal("keys must not step the game")
	}

	m, _ = tick(t, m)
	if len(game.frames) != 1 {
		t.Fatalf("got %d steps, want 1", len(game.frames))
	}
	want := []core.KeyEvent{{Action: core.ActionUp, Key: "w"}, {Action: core.ActionLeft, Key: "left"}}
	if len(game.frames[0]) != 2 || game.frames[0][0] != want[0] || game.frames[0][1] != want[1] {
		t.Errorf("frame = %+v, want %+v", game.frames[0], want)
	}

	tick(t, m)
	if len(game.frames[1]) != 0 {
		t.Errorf("frame should be cleared after a tick, got %+v", game.frames[1])
	}
}

func TestModelForwardsCuesAndLogsErrors(t *testing.T) {
	var buf bytes.Buffer
	player := &recordingPlayer{}
	game := &stubGame{results: []core.StepResult{{
		Cues: []core.Cue{core.CueMove, core.CueEat},
		Err:  errors.New("disk full"),
	}}}
	m := NewModel(game, testConfig(), Deps{Player: player, Logger: log.New(&buf)})
	m.Init()

	_, cmd := tick(t, m)
	if isQuit(cmd) {
		t.Fatal("tick should keep running")
	}
	if len(player.cues) != 2 || player.cues[0] != core.CueMove || player.cues[1] != core.CueEat {
		t.Errorf("cues = %v", player.cues)
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("log = %q, want the step error", buf.String())
	}
}

func TestModelLogsMusicToggle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	m := NewModel(&stubGame{}, testConfig(), Deps{Logger: logger})
	m.Init()

	m, _ = tick(t, m)
	if strings.Contains(buf.String(), "music toggle") {
		t.Fatalf("logged a toggle without the key: %q", buf.String())
	}

	next, _ := m.Update(runeKey('m'))
	tick(t, next.(Model))
	if !strings.Contains(buf.String(), "music toggle requested") {
		t.Errorf("log = %q, want the toggle", buf.String())
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	over := core.StepResult{State: core.GameState{Score: 3, GameOver: true}}
	game := &stubGame{
		results: []core.StepResult{over, over, {}, over},
		run:     core.RunSummary{Score: 3, Length: 4, Duration: 9 * time.Second, EndReason: "wall"},
		hasRun:  true,
	}
	m := NewModel(game, testConfig(), Deps{Store: store})
	m.Init()

	for range 4 {
		m, _ = tick(t, m)
	}

	runs, err := store.AllRuns("stub")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2 (one per game over)", len(runs))
	}
	r := runs[0]
	if r.Score != 3 || r.Length != 4 || r.Duration != 9*time.Second || r.EndReason != "wall" {
		t.Errorf("run = %+v", r)
	}
}

func TestModelQuitsWhenTerminated(t *testing.T) {
	game := &stubGame{results: []core.StepResult{{State: core.GameState{Terminated: true}}}}
	m := NewModel(game, testConfig(), Deps{})
	m.Init()

	m, cmd := tick(t, m)
	if !isQuit(cmd) {
		t.Error("terminated game should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := NewModel(&stubGame{}, testConfig(), Deps{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, testConfig(), Deps{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
	if !strings.Contains(next.View(), "stub") {
		t.Errorf("view = %q", next.View())
	}
}

func TestModelTickRateFallback(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 0
	m := NewModel(&stubGame{tickRate: 10}, cfg, Deps{})
	if m.tickRate != 10 {
		t.Errorf("tickRate = %d, want variant default 10", m.tickRate)
	}

	cfg.TickRate = 12
	m = NewModel(&stubGame{tickRate: 10}, cfg, Deps{})
	if m.tickRate != 12 {
		t.Errorf("tickRate = %d, want override 12", m.tickRate)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := NewModel(&stubGame{}, testConfig(), Deps{ScreenshotDir: dir})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	path := filepath.Join(dir, "stub_20240301_120000.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot = %q", data)
	}
}
