package internal

import (
	"errors"
	"sync/atomic"
)

var (
	setupLocked atomic.Bool

	errSetupLocked   = errors.New("cannot change app setup after the server has started")
	errSetupUnlocked = errors.New("cannot start serving until app setup is locked down")
)

// LockCustomizations marks the end of app setup. The cli calls it right before
// it starts executing commands.
func LockCustomizations() {
	setupLocked.Store(true)
}

// CheckCanCustomize panics once setup is locked.
func CheckCanCustomize() {
	if setupLocked.Load() {
		panic(errSetupLocked)
	}
}

// CheckLockedDown panics until setup is locked.
func CheckLockedDown() {
	if !setupLocked.Load() {
		panic(errSetupUnlocked)
	}
}
