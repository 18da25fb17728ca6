package thread

// NullMutex satisfies Locker and does nothing. Use it to instantiate code
// written against a Locker when the data is confined to one goroutine.
type NullMutex struct{}

func (NullMutex) Lock()   {}
func (NullMutex) Unlock() {}

// NullRWLock satisfies RWLocker and does nothing.
type NullRWLock struct{}

func (NullRWLock) RdLock() {}
func (NullRWLock) WrLock() {}
func (NullRWLock) Unlock() {}
