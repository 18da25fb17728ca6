// Package errgroup runs error-returning functions on managed threads and
// joins them together, in the spirit of golang.org/x/sync/errgroup. Unlike
// x/sync, nothing is cancelled when a function fails and Wait reports every
// failure, not just the first.
package errgroup

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/NetPo4ki/go-thread/thread"
)

// Group is a set of managed threads joined together by Wait. Each call to Go
// starts a new thread; threads are never reused.
type Group struct {
	prefix string
	opts   []thread.Option

	mu      sync.Mutex
	n       int
	members []*member
}

type member struct {
	t   *thread.ManagedThread
	err error // written by t before it finishes
}

// New creates a Group whose threads are named "<prefix>-<n>" and started
// with opts.
func New(prefix string, opts ...thread.Option) *Group {
	return &Group{prefix: prefix, opts: opts}
}

// Go starts f on a new managed thread. A nil f is ignored.
func (g *Group) Go(f func() error) {
	if f == nil {
		return
	}
	g.mu.Lock()
	g.n++
	name := fmt.Sprintf("%s-%d", g.prefix, g.n)
	g.mu.Unlock()

	m := &member{}
	t, err := thread.New(func() { m.err = f() }, name, g.opts...)
	if err != nil {
		m.err = err
	}
	m.t = t

	g.mu.Lock()
	g.members = append(g.members, m)
	g.mu.Unlock()
}

// Wait joins every thread started so far. It returns nil if all of them
// succeeded, or a *multierror.Error holding each failure in start order.
func (g *Group) Wait() error {
	g.mu.Lock()
	members := g.members
	g.members = nil
	g.mu.Unlock()

	var merr *multierror.Error
	for _, m := range members {
		if m.t != nil {
			if err := m.t.Join(); err != nil {
				merr = multierror.Append(merr, err)
				continue
			}
		}
		if m.err != nil {
			merr = multierror.Append(merr, m.err)
		}
	}
	return merr.ErrorOrNil()
}
