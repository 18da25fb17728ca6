package thread

import "sync/atomic"

// Mutex is an exclusive lock. It is not re-entrant: a goroutine calling Lock
// while it already holds the Mutex deadlocks. The zero value is unlocked.
//
// With the deadlock build tag the Mutex is backed by go-deadlock, which
// reports lock-order inversions and long waits.
type Mutex struct {
	_  noCopy
	mu mutex
}

func (m *Mutex) Lock()   { m.mu.Lock() }
func (m *Mutex) Unlock() { m.mu.Unlock() }

// RWLock is a reader/writer lock. Any number of readers may hold it through
// RdLock as long as no writer holds it; WrLock admits one writer and
// excludes everyone else. There is no upgrade or downgrade: a reader must
// Unlock before calling WrLock. The zero value is unlocked.
//
// RdLock is not recursive either. A goroutine taking a second shared hold
// deadlocks if a writer is already waiting between the two calls, and under
// the deadlock build tag the second call is reported as recursive locking,
// which aborts the process.
type RWLock struct {
	_  noCopy
	mu rwmutex
	// writer is set while a writer holds mu. Readers and a writer never
	// hold mu together, so the flag alone tells Unlock which mode to release.
	writer atomic.Bool
}

func (l *RWLock) RdLock() { l.mu.RLock() }

func (l *RWLock) WrLock() {
	l.mu.Lock()
	l.writer.Store(true)
}

func (l *RWLock) Unlock() {
	if l.writer.CompareAndSwap(true, false) {
		l.mu.Unlock()
		return
	}
	l.mu.RUnlock()
}
