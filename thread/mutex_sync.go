//go:build !deadlock

package thread

import "sync"

// DeadlockDetection reports whether Mutex and RWLock are backed by the
// go-deadlock detector. Build with -tags=deadlock to enable it.
const DeadlockDetection = false

type (
	mutex   = sync.Mutex
	rwmutex = sync.RWMutex
)
