package otel_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"

	"github.com/NetPo4ki/go-thread/observe/otel"
	"github.com/NetPo4ki/go-thread/thread"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newObserver(t *testing.T) (*otel.Observer, *tracetest.SpanRecorder) {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return otel.New(tp.Tracer("thread-test")), sr
}

func spanNames(spans []sdktrace.ReadOnlySpan) []string {
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name())
	}
	return names
}

func TestObserverJoinedThread(t *testing.T) {
	t.Parallel()

	obs, sr := newObserver(t)
	th, err := thread.New(func() { thread.SetCurrentName("renamed") }, "traced", thread.WithObserver(obs))
	require.NoError(t, err)
	require.NoError(t, th.Join())

	ended := sr.Ended()
	require.Equal(t, []string{"thread traced", "join renamed"}, spanNames(ended))

	run := ended[0]
	assert.Contains(t, run.Attributes(), attribute.Int64("thread.id", th.ID()))
	assert.Contains(t, run.Attributes(), attribute.String("thread.name", "renamed"))
	assert.Equal(t, codes.Unset, run.Status().Code)
}

func TestObserverPanickedDetachedThread(t *testing.T) {
	t.Parallel()

	obs, sr := newObserver(t)
	release := make(chan struct{})
	th, err := thread.New(func() {
		<-release
		panic("boom")
	}, "doomed",
		thread.WithObserver(obs),
		thread.WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)
	require.NoError(t, th.Detach())
	close(release)
	<-th.Done()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "detached", ended[0].Events()[0].Name)
}

func TestNop(t *testing.T) {
	t.Parallel()

	th, err := thread.New(func() {}, "quiet", thread.WithObserver(otel.NewNop()))
	require.NoError(t, err)
	require.NoError(t, th.Join())
}
