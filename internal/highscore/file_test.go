package highscore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "high_score.txt"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)

	if err := s.Save(42); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := s.Load(); got != 42 {
		t.Errorf("Load() = %d, want 42", got)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "42" {
		t.Errorf("file content = %q, want %q", data, "42")
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := newStore(t)
	if got := s.Load(); got != 0 {
		t.Errorf("Load() on missing file = %d, want 0", got)
	}
}

func TestLoadInvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"non-numeric", "abc", 0},
		{"empty", "", 0},
		{"negative", "-5", 0},
		{"float", "3.5", 0},
		{"trailing newline", "17\n", 17},
		{"surrounding spaces", "  8 ", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(s.Path(), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := s.Load(); got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReset(t *testing.T) {
	s := newStore(t)
	if err := s.Save(99); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0" {
		t.Errorf("file content after reset = %q, want %q", data, "0")
	}
	if got := s.Load(); got != 0 {
		t.Errorf("Load() after reset = %d, want 0", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newStore(t)
	for _, n := range []int{1000, 7} {
		if err := s.Save(n); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Load(); got != 7 {
		t.Errorf("Load() = %d, want 7", got)
	}
}

func TestConcurrentSaves(t *testing.T) {
	s := newStore(t)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := s.Save(n); err != nil {
				t.Errorf("Save(%d): %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	if got := s.Load(); got < 0 || got >= 20 {
		t.Errorf("Load() = %d, want one of the saved values", got)
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	s, err := Open("~/scores/high.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if want := filepath.Join(home, "scores", "high.txt"); s.Path() != want {
		t.Errorf("Path() = %q, want %q", s.Path(), want)
	}
}
