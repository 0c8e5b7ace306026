package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/conference-tracks/internal/domain"
)

const (
	scheduleFileMode = 0o644
	scheduleDirMode  = 0o755
	tempFilePattern  = ".schedule-*.tmp"
)

// WriteAtomic replaces path with data through a temp file in the same directory,
// so readers never observe a half-written schedule.
func WriteAtomic(path string, data []byte) error {
	if path == "" {
		return errors.New("output path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	if err := os.MkdirAll(filepath.Dir(absPath), scheduleDirMode); err != nil {
		return &domain.IOError{Op: "create output directory", Err: err}
	}

	tempFile, err := os.CreateTemp(filepath.Dir(absPath), tempFilePattern)
	if err != nil {
		return &domain.IOError{Op: "create temp output file", Err: err}
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return &domain.IOError{Op: "write temp output file", Err: err}
	}

	if err := tempFile.Chmod(scheduleFileMode); err != nil {
		_ = tempFile.Close()
		return &domain.IOError{Op: "chmod temp output file", Err: err}
	}

	if err := tempFile.Close(); err != nil {
		return &domain.IOError{Op: "close temp output file", Err: err}
	}

	if err := os.Rename(tempName, absPath); err != nil {
		return &domain.IOError{Op: "replace output file", Err: err}
	}

	cleanup = false
	return nil
}
