package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileStore writes objects under a root directory on disk.
type LocalFileStore struct {
	root string
}

var _ FileStore = (*LocalFileStore)(nil)

// NewLocalFileStore creates root if needed.
func NewLocalFileStore(root string) (*LocalFileStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("local storage directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", root, err)
	}
	return &LocalFileStore{root: root}, nil
}

func (s *LocalFileStore) resolve(objectKey string) (string, error) {
	if objectKey == "" {
		return "", ErrInvalidObjectKey
	}
	full := filepath.Join(s.root, filepath.FromSlash(objectKey))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidObjectKey, objectKey)
	}
	return full, nil
}

// Save writes content to objectKey, replacing any previous object.
func (s *LocalFileStore) Save(ctx context.Context, objectKey, _ string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.resolve(objectKey)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", objectKey, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", objectKey, err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", objectKey, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close %s: %w", objectKey, err)
	}
	return nil
}

// Delete removes objectKey. A missing object is not an error.
func (s *LocalFileStore) Delete(_ context.Context, objectKey string) error {
	path, err := s.resolve(objectKey)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", objectKey, err)
	}
	return nil
}

// Close is a no-op.
func (s *LocalFileStore) Close() error { return nil }
