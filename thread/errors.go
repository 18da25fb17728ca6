package thread

import "errors"

var (
	// ErrInvalidArgument is returned by New when the function to run is nil.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is returned by Join and Detach when the thread was
	// already joined or detached, or when a thread joins itself.
	ErrInvalidState = errors.New("invalid state")
	// ErrPanicked is wrapped by the error Join returns when the thread's
	// function panicked.
	ErrPanicked = errors.New("thread panicked")
	// ErrUnlockOfUnlocked is the panic value of Spinlock.Unlock on a free lock.
	ErrUnlockOfUnlocked = errors.New("unlock of unlocked spinlock")
)
