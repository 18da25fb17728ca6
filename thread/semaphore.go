package thread

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/semaphore"
)

// semaphoreSize is the capacity of the weighted semaphore behind Semaphore.
// Tokens held by the Semaphore itself are the ones not yet notified.
const semaphoreSize = math.MaxInt64

// Semaphore is a counting semaphore. Wait takes one unit of the count,
// blocking while it is zero; Notify adds one unit and wakes one waiter.
//
// A Semaphore must be created with NewSemaphore and must not be copied.
type Semaphore struct {
	_ noCopy
	w *semaphore.Weighted
}

// NewSemaphore returns a Semaphore whose count starts at initial.
func NewSemaphore(initial uint32) *Semaphore {
	w := semaphore.NewWeighted(semaphoreSize)
	if !w.TryAcquire(semaphoreSize - int64(initial)) {
		fatal("semaphore init failed", fmt.Errorf("reserve %d units", semaphoreSize-int64(initial)))
	}
	return &Semaphore{w: w}
}

// Wait blocks until the count is positive and then decrements it.
func (s *Semaphore) Wait() {
	if err := s.w.Acquire(context.Background(), 1); err != nil {
		fatal("semaphore wait failed", err)
	}
}

// TryWait decrements the count if it is positive and reports whether it did.
// It never blocks.
func (s *Semaphore) TryWait() bool {
	return s.w.TryAcquire(1)
}

// Notify increments the count, waking one blocked Wait if there is one.
func (s *Semaphore) Notify() {
	defer func() {
		if r := recover(); r != nil {
			fatal("semaphore notify failed", fmt.Errorf("%v", r))
		}
	}()
	s.w.Release(1)
}
