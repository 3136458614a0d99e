package instance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/logging"
	"github.com/hyprhelp/hyprhelp/internal/ports"
)

// FileLock is a single-instance guard backed by an exclusive, non-blocking
// lock on a file. The lock lives as long as the process keeps the file open.
type FileLock struct {
	file *os.File
	path string
}

// Compile-time interface verification
var _ ports.InstanceLock = (*FileLock)(nil)

// NewFileLock creates a lock for path; nothing is opened until Acquire
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// Acquire takes the lock or returns domain.ErrAlreadyRunning if another
// process holds it
func (l *FileLock) Acquire() error {
	if l.file != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		return err
	}

	l.file = file
	logging.Logger.Debug("Instance lock acquired", "path", l.path)
	return nil
}

// Release drops the lock. The lock file itself is left in place.
func (l *FileLock) Release() error {
	if l.file == nil {
		return nil
	}
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil

	if unlockErr != nil {
		return fmt.Errorf("failed to release lock: %w", unlockErr)
	}
	return closeErr
}

// errAlreadyRunning wraps the platform error for a held lock
func errAlreadyRunning(cause error) error {
	return fmt.Errorf("%w: %v", domain.ErrAlreadyRunning, cause)
}
