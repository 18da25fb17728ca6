package thread

import (
	"log/slog"
	"time"
)

// Option configures a ManagedThread created by New.
type Option func(*Options)

// Options holds the settings applied by Option functions.
type Options struct {
	PanicAsError bool
	Observer     Observer
	Logger       *slog.Logger
}

func defaultOptions() Options { return Options{PanicAsError: true} }

// WithPanicAsError controls what happens when the thread's function panics.
// When true (the default) the panic is recovered, logged and returned by
// Join wrapped in ErrPanicked. When false it crashes the process.
func WithPanicAsError(v bool) Option { return func(o *Options) { o.PanicAsError = v } }

// WithObserver reports the thread's lifecycle events to obs.
func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// WithLogger sets the logger for this thread's records instead of the
// package logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// Info identifies a ManagedThread in Observer callbacks.
type Info struct {
	ID   int64
	Name string
}

// Observer receives lifecycle events of ManagedThreads. ThreadStarted and
// ThreadFinished are called on the thread's own goroutine; ThreadJoined and
// ThreadDetached on the caller's.
type Observer interface {
	ThreadStarted(info Info)
	ThreadFinished(info Info, dur time.Duration, panicked bool)
	ThreadJoined(info Info, wait time.Duration)
	ThreadDetached(info Info)
}
