package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps proof files on the local filesystem under a base
// directory. Keys map directly to relative paths.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates the base directory if needed.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

func (l *LocalStorage) path(key string) string {
	// Keys are server-generated, but never trust them as paths outright.
	clean := filepath.Clean("/" + key)
	return filepath.Join(l.baseDir, clean)
}

// Save writes the file to disk and returns its serving path.
func (l *LocalStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	dst := l.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create proof dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create proof file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write proof file: %w", err)
	}

	return "/" + strings.TrimPrefix(key, "/"), nil
}

// Remove unlinks the file. A missing file is treated as already removed.
func (l *LocalStorage) Remove(ctx context.Context, key string) error {
	err := os.Remove(l.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List walks the base directory and returns all stored keys.
func (l *LocalStorage) List(ctx context.Context) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(l.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.baseDir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
