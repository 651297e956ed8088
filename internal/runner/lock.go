//go:build !windows

package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// lockFilePath returns the lock file guarding a checkpoint.
func lockFilePath(checkpoint string) string {
	return checkpoint + ".lock"
}

// AcquireCheckpointLock takes an exclusive file lock on <checkpoint>.lock so
// that two g16 runs never write the same checkpoint file. The lock is
// released when the returned function is called or when the process exits.
// Returns an error satisfying IsLockHeld if another process holds it.
func AcquireCheckpointLock(checkpoint string) (unlock func(), err error) {
	lockPath := lockFilePath(checkpoint)
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	// Try non-blocking exclusive lock
	err = syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("checkpoint %s: %w", checkpoint, errLockHeld)
	}

	return func() {
		_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		f.Close()
	}, nil
}
