package thread

import (
	"sync"

	"github.com/petermattis/goid"
)

// UnknownName is what CurrentName returns on a goroutine that has no name.
const UnknownName = "UNKNOWN"

// binding is the identity of one goroutine. Exactly one of thread and name
// is meaningful: managed goroutines read their name from the thread.
type binding struct {
	thread *ManagedThread
	name   string
}

// identities maps goroutine id to *binding. Goroutine ids are never reused,
// so an entry left behind by an exited goroutine is never read again, but
// it is never freed either.
var identities sync.Map

func bind(id int64, t *ManagedThread) { identities.Store(id, &binding{thread: t}) }

func unbind(id int64) { identities.Delete(id) }

func lookup(id int64) (*binding, bool) {
	v, ok := identities.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*binding), true
}

// Current returns the ManagedThread running the calling goroutine, or nil
// if the caller is not a managed thread.
func Current() *ManagedThread {
	if b, ok := lookup(goid.Get()); ok {
		return b.thread
	}
	return nil
}

// CurrentName returns the name bound to the calling goroutine, or
// UnknownName.
func CurrentName() string {
	b, ok := lookup(goid.Get())
	switch {
	case !ok:
		return UnknownName
	case b.thread != nil:
		return b.thread.Name()
	default:
		return b.name
	}
}

// SetCurrentName binds name to the calling goroutine. On a managed thread
// it also renames the thread and the binding goes away when the thread
// exits. On an unmanaged goroutine the entry leaks: it outlives the
// goroutine unless the goroutine calls ClearCurrentName before returning,
// so pair the two calls, typically with defer.
func SetCurrentName(name string) {
	id := goid.Get()
	if b, ok := lookup(id); ok && b.thread != nil {
		b.thread.setName(name)
		return
	}
	identities.Store(id, &binding{name: name})
}

// ClearCurrentName drops a name set by SetCurrentName on an unmanaged
// goroutine. Without it that entry leaks once the goroutine exits. It has
// no effect on a managed thread.
func ClearCurrentName() {
	id := goid.Get()
	if b, ok := lookup(id); ok && b.thread == nil {
		unbind(id)
	}
}
