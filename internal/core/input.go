package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // W, Up arrow
	ActionDown                  // S, Down arrow
	ActionLeft                  // A, Left arrow
	ActionRight                 // D, Right arrow
	ActionMute                  // M - toggle background music
	ActionRestart               // R - restart after game over
	ActionQuit                  // Q, Esc - leave from menu or game over
	ActionResetHighScore        // Delete - start with a cleared high score
	ActionChangeColor           // C - pick another snake color after game over
	ActionConfirm               // Enter
	ActionAnyKey                // Any key without a dedicated binding
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionMute:
		return "Mute"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionResetHighScore:
		return "ResetHighScore"
	case ActionChangeColor:
		return "ChangeColor"
	case ActionConfirm:
		return "Confirm"
	case ActionAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key-down event: the action it maps to plus the raw key
// name, which screens like color selection match against directly.
type KeyEvent struct {
	Action Action
	Key    string
}

// InputFrame holds the key-down events received between two simulation ticks.
// Events keep their arrival order: direction changes are gated one by one.
type InputFrame struct {
	events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Add appends a key event.
func (f *InputFrame) Add(a Action, key string) {
	f.events = append(f.events, KeyEvent{Action: a, Key: key})
}

// Set appends an event for an action without a raw key.
func (f *InputFrame) Set(a Action) {
	f.Add(a, "")
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.events {
		if e.Action == a {
			return true
		}
	}
	return false
}

// Events returns the events in arrival order.
func (f InputFrame) Events() []KeyEvent {
	return f.events
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{events: make([]KeyEvent, len(f.events))}
	copy(clone.events, f.events)
	return clone
}

// Cue is a discrete audio event emitted by a game.
// Mapping cues to actual sounds is the audio player's job.
type Cue int

const (
	CueMove        Cue = iota // Direction change accepted
	CueEat                    // Ate an apple
	CueHighScore              // Ate an apple that set a new high score
	CueGameOver               // Run ended
	CueMusicStart             // Run started, loop background music
	CueMusicStop              // Run ended, stop background music
	CueMusicMute              // Player muted the music
	CueMusicUnmute            // Player unmuted the music
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueEat:
		return "eat"
	case CueHighScore:
		return "high_score"
	case CueGameOver:
		return "game_over"
	case CueMusicStart:
		return "music_start"
	case CueMusicStop:
		return "music_stop"
	case CueMusicMute:
		return "music_mute"
	case CueMusicUnmute:
		return "music_unmute"
	default:
		return "unknown"
	}
}
