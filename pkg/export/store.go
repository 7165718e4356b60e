package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists rendered documents on disk under a base directory.
type Store struct {
	baseDir string
}

// NewStore ensures the base directory exists and returns a handle.
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		baseDir = "./exports"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create exports directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes the rendered document under the base directory and returns its
// absolute path.
func (s *Store) Save(filename string, data []byte) (string, error) {
	path := s.resolve(filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// Path resolves a filename against the base directory.
func (s *Store) Path(filename string) string {
	return s.resolve(filename)
}

func (s *Store) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(s.baseDir, filename)
}
