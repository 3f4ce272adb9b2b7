// Package lock keeps a single stoplight instance per home directory.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/stoplight/internal/logging"
)

// ErrHeld is returned when another process owns the lock.
var ErrHeld = errors.New("another stoplight instance is running")

// InstanceLock is an exclusive advisory lock on a file.
type InstanceLock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path without blocking.
// The file is created if missing and holds the owner's pid.
func Acquire(path string) (*InstanceLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		file.Close()
		if errors.Is(err, errWouldBlock) {
			return nil, ErrHeld
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if err := file.Truncate(0); err == nil {
		fmt.Fprintf(file, "%d\n", os.Getpid())
	}

	logging.Logger.Debug("Instance lock acquired", "path", path)
	return &InstanceLock{file: file, path: path}, nil
}

// Path returns the lock file path.
func (l *InstanceLock) Path() string {
	return l.path
}

// Release unlocks and closes the lock file. Safe to call more than once.
func (l *InstanceLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil
	logging.Logger.Debug("Instance lock released", "path", l.path)
	return errors.Join(unlockErr, closeErr)
}
