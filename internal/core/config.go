package core

import "time"

// ScoreKeeper persists the high score outside the game.
// Load never fails: a missing or unreadable value is reported as 0.
type ScoreKeeper interface {
	Load() int
	Save(score int) error
}

// RuntimeConfig is the context handed to a game at (re)initialization.
// Games use it to adapt to screen size, for deterministic simulation and to
// reach the collaborators they must not own themselves.
type RuntimeConfig struct {
	ScreenW  int         // Screen width in characters
	ScreenH  int         // Screen height in characters
	TickRate int         // Simulation ticks per second (0 = variant default)
	Seed     int64       // RNG seed for deterministic gameplay
	Scores   ScoreKeeper // High score persistence (nil = in-memory only)
	Clock    func() time.Time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Clock:   time.Now,
	}
}

// Now returns the configured clock's time, falling back to time.Now.
func (c RuntimeConfig) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int    // Current run score
	HighScore  int    // Best score known to the game
	GameOver   bool   // Whether the current run has ended
	Terminated bool   // Whether the player asked to leave the game
	Phase      string // Session phase name, for logs and screenshots
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Audio cues raised during this tick, in order
	Err   error // Non-fatal failure (e.g. high score write), for logging
}

// RunSummary describes a finished run, for history storage.
type RunSummary struct {
	Score     int
	Length    int           // Final body length in cells
	Duration  time.Duration // From run start to game over
	EndReason string        // e.g. "self", "wall", "board_full"
}
