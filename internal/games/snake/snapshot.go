package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Length    int
	Head      core.Cell
	Dir       Direction
	Apple     core.Cell
	HasApple  bool
	Growth    int
	EndReason EndReason
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var head core.Cell
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Length:    len(g.snake),
		Head:      head,
		Dir:       g.direction,
		Apple:     g.apple,
		HasApple:  g.hasApple,
		Growth:    g.growth,
		EndReason: g.endReason,
	}
}
