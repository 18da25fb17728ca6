// Package thread provides goroutine synchronization primitives and managed
// worker goroutines.
//
// The lock family (Mutex, RWLock, Spinlock and the no-op NullMutex and
// NullRWLock) is consumed through two small capability interfaces, Locker
// and RWLocker. The scoped guards ExclusiveGuard, ReadGuard and WriteGuard
// are generic over those interfaces, so code written against a guard works
// unchanged whether it is instantiated with a real lock or a null one:
//
//	var mu thread.Mutex
//	g := thread.NewExclusiveGuard(&mu)
//	defer g.Unlock()
//
// Semaphore is a counting semaphore with Wait and Notify.
//
// ManagedThread owns one goroutine that runs a single function to
// completion. New returns only after the goroutine has published its id and
// name, and the goroutine can find its own ManagedThread through Current and
// CurrentName for as long as it runs.
package thread
