package thread

import (
	"github.com/NetPo4ki/go-thread/internal/backtrace"
)

// ExclusiveGuard holds a Locker for the span of a critical section. It is
// created locked; Lock and Unlock are no-ops when the guard is already in
// the requested state. Pair creation with a deferred Unlock:
//
//	g := thread.NewExclusiveGuard(&mu)
//	defer g.Unlock()
//
// A guard refers to the caller's lock and must not be copied.
type ExclusiveGuard[L Locker] struct {
	_      noCopy
	l      L
	locked bool
}

// NewExclusiveGuard locks l and returns a guard holding it.
func NewExclusiveGuard[L Locker](l L) *ExclusiveGuard[L] {
	l.Lock()
	return &ExclusiveGuard[L]{l: l, locked: true}
}

func (g *ExclusiveGuard[L]) Lock() {
	if !g.locked {
		g.l.Lock()
		g.locked = true
	}
}

func (g *ExclusiveGuard[L]) Unlock() {
	if g.locked {
		g.locked = false
		release(g.l.Unlock)
	}
}

// Locked reports whether the guard currently holds the lock.
func (g *ExclusiveGuard[L]) Locked() bool { return g.locked }

// ReadGuard holds the shared side of an RWLocker. It follows the same rules
// as ExclusiveGuard.
type ReadGuard[L RWLocker] struct {
	_      noCopy
	l      L
	locked bool
}

// NewReadGuard read-locks l and returns a guard holding it.
func NewReadGuard[L RWLocker](l L) *ReadGuard[L] {
	l.RdLock()
	return &ReadGuard[L]{l: l, locked: true}
}

func (g *ReadGuard[L]) Lock() {
	if !g.locked {
		g.l.RdLock()
		g.locked = true
	}
}

func (g *ReadGuard[L]) Unlock() {
	if g.locked {
		g.locked = false
		release(g.l.Unlock)
	}
}

func (g *ReadGuard[L]) Locked() bool { return g.locked }

// WriteGuard holds the exclusive side of an RWLocker. It follows the same
// rules as ExclusiveGuard.
type WriteGuard[L RWLocker] struct {
	_      noCopy
	l      L
	locked bool
}

// NewWriteGuard write-locks l and returns a guard holding it.
func NewWriteGuard[L RWLocker](l L) *WriteGuard[L] {
	l.WrLock()
	return &WriteGuard[L]{l: l, locked: true}
}

func (g *WriteGuard[L]) Lock() {
	if !g.locked {
		g.l.WrLock()
		g.locked = true
	}
}

func (g *WriteGuard[L]) Unlock() {
	if g.locked {
		g.locked = false
		release(g.l.Unlock)
	}
}

func (g *WriteGuard[L]) Locked() bool { return g.locked }

// WithLock runs fn while holding l. The lock is released however fn
// returns, including by panic.
func WithLock[L Locker](l L, fn func()) {
	g := NewExclusiveGuard(l)
	defer g.Unlock()
	fn()
}

// WithReadLock runs fn while holding the shared side of l.
func WithReadLock[L RWLocker](l L, fn func()) {
	g := NewReadGuard(l)
	defer g.Unlock()
	fn()
}

// WithWriteLock runs fn while holding the exclusive side of l.
func WithWriteLock[L RWLocker](l L, fn func()) {
	g := NewWriteGuard(l)
	defer g.Unlock()
	fn()
}

// release calls unlock and swallows a panic from it after logging, so a
// guard's cleanup always completes.
func release(unlock func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Load().Error("guard release failed",
				"panic", r,
				"backtrace", backtrace.String(backtraceFrames, 2, "    "),
			)
		}
	}()
	unlock()
}
