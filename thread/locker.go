package thread

import (
	"sync"
)

// Locker is the exclusive lock capability: Mutex, Spinlock, NullMutex and
// sync.Mutex all provide it.
type Locker = sync.Locker

// RWLocker is the shared/exclusive lock capability. Unlock releases
// whichever mode the caller acquired; every RdLock or WrLock must be paired
// with exactly one Unlock.
type RWLocker interface {
	RdLock()
	WrLock()
	Unlock()
}

var (
	_ Locker   = (*Mutex)(nil)
	_ Locker   = (*Spinlock)(nil)
	_ Locker   = NullMutex{}
	_ RWLocker = (*RWLock)(nil)
	_ RWLocker = NullRWLock{}
)
