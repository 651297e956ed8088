package runner

import "errors"

// errLockHeld is returned when another run is using the same checkpoint.
var errLockHeld = errors.New("checkpoint is in use by another g16 run")

// IsLockHeld reports whether err indicates the checkpoint lock is already held.
func IsLockHeld(err error) bool {
	return errors.Is(err, errLockHeld)
}
