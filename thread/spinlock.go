package thread

import (
	"runtime"
	"sync/atomic"
)

// activeSpins is how many failed attempts Spinlock.Lock makes in a tight
// loop before it starts yielding the processor between attempts.
const activeSpins = 32

// Spinlock is an exclusive lock that busy-waits instead of parking the
// goroutine. Use it only around critical sections shorter than a context
// switch. It is not re-entrant. The zero value is unlocked.
type Spinlock struct {
	_     noCopy
	state atomic.Uint32
}

// Lock spins until the lock is free.
func (s *Spinlock) Lock() {
	var spins int
	for !s.TryLock() {
		delay(&spins)
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (s *Spinlock) TryLock() bool {
	// Plain load first so contended spinners do not bounce the cache line.
	return s.state.Load() == 0 && s.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. It panics with ErrUnlockOfUnlocked if the lock
// is not held.
func (s *Spinlock) Unlock() {
	if !s.state.CompareAndSwap(1, 0) {
		panic(ErrUnlockOfUnlocked)
	}
}

func delay(spins *int) {
	if *spins < activeSpins {
		*spins++
		return
	}
	// With GOMAXPROCS=1 the holder cannot run while we spin.
	runtime.Gosched()
}
