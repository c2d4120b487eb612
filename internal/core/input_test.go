package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Add(ActionUp, "w")
	f.Add(ActionLeft, "left")
	f.Set(ActionMute)

	events := f.Events()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	want := []Action{ActionUp, ActionLeft, ActionMute}
	for i, a := range want {
		if events[i].Action != a {
			t.Errorf("Event %d = %v, expected %v", i, events[i].Action, a)
		}
	}
	if events[1].Key != "left" {
		t.Errorf("Key should be kept, got %q", events[1].Key)
	}
}

func TestInputFrameHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionRestart) {
		t.Error("Empty frame should not have any action")
	}

	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Has(Restart) should be true after Set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Len() != 0 || f.Has(ActionRestart) {
		t.Error("Clear should drop all events")
	}
	if !clone.Has(ActionRestart) {
		t.Error("Clone must not share storage with the original")
	}
}

func TestActionAndCueStrings(t *testing.T) {
	if ActionResetHighScore.String() != "ResetHighScore" {
		t.Errorf("Unexpected action name %q", ActionResetHighScore.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("Unknown actions should be named Unknown")
	}
	if CueHighScore.String() != "high_score" {
		t.Errorf("Unexpected cue name %q", CueHighScore.String())
	}
}
