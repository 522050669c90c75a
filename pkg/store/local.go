package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore implements Store for a directory on the local filesystem.
// All keys are confined to baseDir.
type LocalStore struct {
	baseDir string // absolute
}

// NewLocalStore returns a store reading from baseDir, which must exist.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(absBaseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, baseDir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, baseDir)
	}

	return &LocalStore{baseDir: absBaseDir}, nil
}

// Dir returns the absolute base directory.
func (s *LocalStore) Dir() string { return s.baseDir }

// Open opens the file for key below the base directory.
func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, classifyContextError(err, "open")
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToOpenFile, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", ErrFailedToOpenFile, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, key)
	}

	return f, nil
}

// resolvePath maps key into the base directory, rejecting traversal.
func (s *LocalStore) resolvePath(key string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(key)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}

	return absPath, nil
}

func classifyContextError(err error, operation string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
}
