package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                   { return g.id }
func (g *stubGame) Title() string                { return "Stub " + g.id }
func (g *stubGame) TickRate() int                { return 7 }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Resize(w, h int)              {}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(dst *core.Screen) {}
func (g *stubGame) State() core.GameState   { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID = %q, want stub_a", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" || info.TickRate != 7 {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() should contain stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no_such_game") {
		t.Error("no_such_game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	ids := IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("IDs not sorted: %v", ids)
		}
	}
}
