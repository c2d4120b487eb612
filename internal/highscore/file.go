// Package highscore persists the single best score as a plain text file.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// FileStore keeps the high score as the decimal text of one integer, with no
// delimiter or trailing newline. It implements core.ScoreKeeper and is safe for
// concurrent use.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// Open creates a store for path, expanding a leading "~".
// The file itself is created on the first Save.
func Open(path string) (*FileStore, error) {
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("highscore: %w", err)
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored score. A missing file, unparsable text or a
// negative value all read as 0.
func (s *FileStore) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Save overwrites the file with score.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		score = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("highscore: failed to write %s: %w", s.path, err)
	}
	return nil
}

// Reset stores 0.
func (s *FileStore) Reset() error {
	return s.Save(0)
}
