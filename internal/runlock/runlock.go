// Package runlock keeps two batbroom processes from purging at once.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
)

// ErrBusy is returned when another process holds the lock.
var ErrBusy = errors.New("another cleanup is already running")

const lockName = "batbroom/run.lock"

type Lock struct {
	lock *flock.Flock
	path string
}

// New returns a lock backed by path, or by a file in the XDG state
// directory when path is empty.
func New(path string) (*Lock, error) {
	if path == "" {
		p, err := xdg.StateFile(lockName)
		if err != nil {
			return nil, fmt.Errorf("could not locate lock file: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create lock directory: %w", err)
	}
	return &Lock{lock: flock.New(path), path: path}, nil
}

func (l *Lock) Path() string {
	return l.path
}

// TryLock acquires the lock without waiting.
func (l *Lock) TryLock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !locked {
		return fmt.Errorf("%w (lock %s)", ErrBusy, l.path)
	}
	return nil
}

func (l *Lock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
