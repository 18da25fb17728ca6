package thread

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/petermattis/goid"
)

// ManagedThread owns one goroutine that runs a single function exactly once.
// It cannot be restarted or reused, and must not be copied.
//
// A ManagedThread that is dropped without Join behaves as if Detach had been
// called: its goroutine keeps running. The function may then outlive values
// it captured by reference; nothing here guards against that.
type ManagedThread struct {
	_ noCopy

	id    int64
	fn    func()
	start *Semaphore
	done  chan struct{}

	opts Options
	obs  Observer
	log  *slog.Logger

	mu       sync.Mutex
	name     string
	joined   bool
	detached bool

	// panicErr is written before done is closed.
	panicErr error
}

// New starts fn on a new goroutine named name and returns once that
// goroutine has bound its identity, so ID and Name are valid immediately.
// An empty name becomes UnknownName. New fails with ErrInvalidArgument if
// fn is nil.
func New(fn func(), name string, optFns ...Option) (*ManagedThread, error) {
	if fn == nil {
		return nil, fmt.Errorf("new thread %q: nil function: %w", name, ErrInvalidArgument)
	}
	if name == "" {
		name = UnknownName
	}
	t := &ManagedThread{
		fn:    fn,
		name:  name,
		start: NewSemaphore(0),
		done:  make(chan struct{}),
		opts:  defaultOptions(),
	}
	for _, o := range optFns {
		o(&t.opts)
	}
	t.obs = t.opts.Observer
	t.log = t.opts.Logger
	if t.log == nil {
		t.log = logger.Load()
	}

	go t.run()
	t.start.Wait()
	return t, nil
}

func (t *ManagedThread) run() {
	t.id = goid.Get()
	bind(t.id, t)

	info := t.Info()
	if t.obs != nil {
		t.obs.ThreadStarted(info)
	}
	started := time.Now()
	t.start.Notify()

	end := exitGoexit
	defer func() {
		unbind(t.id)
		if t.obs != nil {
			t.obs.ThreadFinished(t.Info(), time.Since(started), end == exitPanic)
		}
		close(t.done)
	}()

	t.invoke(&end)
}

// exitKind records how the thread's function ended.
type exitKind int

const (
	// exitGoexit is left in place when fn calls runtime.Goexit, which skips
	// both the normal return and recover.
	exitGoexit exitKind = iota
	exitNormal
	exitPanic
)

// invoke runs the function and drops it afterwards so whatever it captured
// can be collected while the handle is still referenced.
func (t *ManagedThread) invoke(end *exitKind) {
	fn := t.fn
	t.fn = nil

	defer func() {
		if *end == exitNormal {
			return
		}
		r := recover()
		if r == nil {
			return
		}
		*end = exitPanic
		if !t.opts.PanicAsError {
			panic(r)
		}
		t.panicErr = fmt.Errorf("thread %q: %w: %v", t.Name(), ErrPanicked, r)
		t.log.Error("thread panicked", "thread", t.Name(), "id", t.id, "panic", r)
	}()
	fn()
	*end = exitNormal
}

// ID returns the goroutine id of the thread.
func (t *ManagedThread) ID() int64 { return t.id }

// Name returns the thread's current name.
func (t *ManagedThread) Name() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.name
}

func (t *ManagedThread) setName(name string) {
	t.mu.Lock()
	t.name = name
	t.mu.Unlock()
}

// Info returns the thread's id and current name.
func (t *ManagedThread) Info() Info { return Info{ID: t.id, Name: t.Name()} }

// String formats the thread as Thread(name#id) for logs and errors.
func (t *ManagedThread) String() string { return fmt.Sprintf("Thread(%s#%d)", t.Name(), t.id) }

// Done returns a channel that is closed once the function has returned.
func (t *ManagedThread) Done() <-chan struct{} { return t.done }

// Join blocks until the function has returned. It fails with
// ErrInvalidState if the thread was already joined or detached, or if
// called from the thread itself. If the function panicked and panics are
// recovered, Join returns an error wrapping ErrPanicked.
func (t *ManagedThread) Join() error {
	label := t.String()
	if goid.Get() == t.id {
		return fmt.Errorf("join %s: thread cannot join itself: %w", label, ErrInvalidState)
	}

	t.mu.Lock()
	switch {
	case t.joined:
		t.mu.Unlock()
		return fmt.Errorf("join %s: already joined: %w", label, ErrInvalidState)
	case t.detached:
		t.mu.Unlock()
		return fmt.Errorf("join %s: detached: %w", label, ErrInvalidState)
	}
	t.joined = true
	t.mu.Unlock()

	started := time.Now()
	<-t.done
	if t.obs != nil {
		t.obs.ThreadJoined(t.Info(), time.Since(started))
	}
	return t.panicErr
}

// Detach gives up the right to Join. The goroutine is neither waited for nor
// stopped.
func (t *ManagedThread) Detach() error {
	label := t.String()
	t.mu.Lock()
	switch {
	case t.joined:
		t.mu.Unlock()
		return fmt.Errorf("detach %s: already joined: %w", label, ErrInvalidState)
	case t.detached:
		t.mu.Unlock()
		return fmt.Errorf("detach %s: already detached: %w", label, ErrInvalidState)
	}
	t.detached = true
	t.mu.Unlock()

	if t.obs != nil {
		t.obs.ThreadDetached(t.Info())
	}
	return nil
}
