//go:build deadlock

package thread

import (
	"errors"
	"os"
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockDetection reports whether Mutex and RWLock are backed by the
// go-deadlock detector. Build with -tags=deadlock to enable it.
const DeadlockDetection = true

// DeadlockTimeoutEnv overrides the default detection timeout.
const DeadlockTimeoutEnv = "GOTHREAD_DEADLOCK_TIMEOUT"

const defaultDeadlockTimeout = 30 * time.Second

type (
	mutex   = deadlock.Mutex
	rwmutex = deadlock.RWMutex
)

func init() {
	deadlock.Opts.DeadlockTimeout = defaultDeadlockTimeout
	if d, err := time.ParseDuration(os.Getenv(DeadlockTimeoutEnv)); err == nil && d > 0 {
		deadlock.Opts.DeadlockTimeout = d
	}
	deadlock.Opts.OnPotentialDeadlock = func() {
		fatal("potential deadlock", errors.New("lock wait exceeded detection timeout"))
	}
}
