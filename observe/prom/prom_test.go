package prom_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/NetPo4ki/go-thread/observe/prom"
	"github.com/NetPo4ki/go-thread/thread"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMetricsObserveThreads(t *testing.T) {
	t.Parallel()

	m := prom.New()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(m))

	ok, err := thread.New(func() {}, "ok", thread.WithObserver(m))
	require.NoError(t, err)
	require.NoError(t, ok.Join())

	bad, err := thread.New(func() { panic("boom") }, "bad",
		thread.WithObserver(m), thread.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	<-bad.Done()
	require.NoError(t, bad.Detach())

	snap := m.GetSnapshot()
	assert.Equal(t, uint64(2), snap.ThreadsStarted)
	assert.Equal(t, uint64(2), snap.ThreadsFinished)
	assert.Equal(t, uint64(1), snap.ThreadsPanicked)
	assert.Equal(t, uint64(1), snap.ThreadsDetached)
	assert.Equal(t, int64(0), snap.ThreadsRunning)
	assert.Equal(t, uint64(1), snap.Joins)
	assert.GreaterOrEqual(t, snap.RunSecondsSum, 0.0)

	expected := `
# HELP gothread_threads_started_total Managed threads whose function has started.
# TYPE gothread_threads_started_total counter
gothread_threads_started_total 2
# HELP gothread_threads_panicked_total Managed threads whose function panicked.
# TYPE gothread_threads_panicked_total counter
gothread_threads_panicked_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"gothread_threads_started_total", "gothread_threads_panicked_total"))
	assert.Equal(t, 7, testutil.CollectAndCount(m))
}

func TestMetricsRunningGauge(t *testing.T) {
	t.Parallel()

	m := prom.New()
	release := make(chan struct{})
	th, err := thread.New(func() { <-release }, "blocked", thread.WithObserver(m))
	require.NoError(t, err)

	assert.Equal(t, int64(1), m.GetSnapshot().ThreadsRunning)
	close(release)
	require.NoError(t, th.Join())
	assert.Equal(t, int64(0), m.GetSnapshot().ThreadsRunning)
}
