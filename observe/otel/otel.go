package otel

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/NetPo4ki/go-thread/thread"
)

var (
	_ thread.Observer = (*Observer)(nil)
	_ thread.Observer = (*Nop)(nil)
)

// Observer traces managed threads with a trace.Tracer.
type Observer struct {
	tracer trace.Tracer
	spans  sync.Map // thread id -> trace.Span, while the thread runs
}

// New returns an Observer that starts its spans on tracer.
func New(tracer trace.Tracer) *Observer {
	return &Observer{tracer: tracer}
}

func attrs(info thread.Info) trace.SpanStartEventOption {
	return trace.WithAttributes(
		attribute.Int64("thread.id", info.ID),
		attribute.String("thread.name", info.Name),
	)
}

// ThreadStarted opens the thread's span.
func (o *Observer) ThreadStarted(info thread.Info) {
	_, span := o.tracer.Start(context.Background(), "thread "+info.Name, attrs(info))
	o.spans.Store(info.ID, span)
}

// ThreadFinished ends the thread's span, marking it as an error if the
// function panicked.
func (o *Observer) ThreadFinished(info thread.Info, _ time.Duration, panicked bool) {
	v, ok := o.spans.LoadAndDelete(info.ID)
	if !ok {
		return
	}
	span := v.(trace.Span)
	// The name may have changed while running.
	span.SetAttributes(attribute.String("thread.name", info.Name))
	if panicked {
		span.SetStatus(codes.Error, "panicked")
	}
	span.End()
}

// ThreadJoined records a span covering the time Join waited.
func (o *Observer) ThreadJoined(info thread.Info, wait time.Duration) {
	end := time.Now()
	_, span := o.tracer.Start(context.Background(), "join "+info.Name,
		attrs(info), trace.WithTimestamp(end.Add(-wait)))
	span.End(trace.WithTimestamp(end))
}

// ThreadDetached adds a "detached" event to the thread's span if the thread
// is still running.
func (o *Observer) ThreadDetached(info thread.Info) {
	if v, ok := o.spans.Load(info.ID); ok {
		v.(trace.Span).AddEvent("detached")
	}
}

// Nop is a no-op implementation of the thread.Observer interface.
type Nop struct{}

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) ThreadStarted(thread.Info)                       {}
func (*Nop) ThreadFinished(thread.Info, time.Duration, bool) {}
func (*Nop) ThreadJoined(thread.Info, time.Duration)         {}
func (*Nop) ThreadDetached(thread.Info)                      {}
