// Package prom exports ManagedThread lifecycle metrics to Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/NetPo4ki/go-thread/thread"
)

const namespace = "gothread"

var (
	_ thread.Observer      = (*Metrics)(nil)
	_ prometheus.Collector = (*Metrics)(nil)
)

// Metrics is a thread.Observer that maintains Prometheus counters, a gauge
// of running threads and histograms of run and join-wait time. Register it
// with a prometheus.Registerer to export them.
type Metrics struct {
	// threads
	started  prometheus.Counter
	finished prometheus.Counter
	panicked prometheus.Counter
	detached prometheus.Counter
	running  prometheus.Gauge
	runTime  prometheus.Histogram

	// joins
	joinWait prometheus.Histogram
}

// New returns a new Metrics observer.
func New() *Metrics {
	return &Metrics{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "threads_started_total",
			Help: "Managed threads whose function has started.",
		}),
		finished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "threads_finished_total",
			Help: "Managed threads whose function has returned, including by panic.",
		}),
		panicked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "threads_panicked_total",
			Help: "Managed threads whose function panicked.",
		}),
		detached: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "threads_detached_total",
			Help: "Managed threads detached instead of joined.",
		}),
		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "threads_running",
			Help: "Managed threads currently running their function.",
		}),
		runTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "thread_run_seconds",
			Help:    "Time managed threads spent running their function.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		joinWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "join_wait_seconds",
			Help:    "Time Join blocked waiting for a thread to finish.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.started, m.finished, m.panicked, m.detached, m.running, m.runTime, m.joinWait}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors() {
		c.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors() {
		c.Collect(ch)
	}
}

// ThreadStarted increments running and started.
func (m *Metrics) ThreadStarted(thread.Info) {
	m.running.Inc()
	m.started.Inc()
}

// ThreadFinished decrements running, counts the finish and records run time.
func (m *Metrics) ThreadFinished(_ thread.Info, dur time.Duration, panicked bool) {
	m.running.Dec()
	m.finished.Inc()
	if panicked {
		m.panicked.Inc()
	}
	m.runTime.Observe(dur.Seconds())
}

// ThreadJoined records how long Join waited.
func (m *Metrics) ThreadJoined(_ thread.Info, wait time.Duration) {
	m.joinWait.Observe(wait.Seconds())
}

// ThreadDetached counts a detach.
func (m *Metrics) ThreadDetached(thread.Info) {
	m.detached.Inc()
}

// Snapshot is a copy of current metric values for inspection.
type Snapshot struct {
	ThreadsStarted  uint64
	ThreadsFinished uint64
	ThreadsPanicked uint64
	ThreadsDetached uint64
	ThreadsRunning  int64
	RunSecondsSum   float64
	Joins           uint64
	JoinWaitSum     float64
}

// GetSnapshot returns the current metrics snapshot.
func (m *Metrics) GetSnapshot() Snapshot {
	run := histogram(m.runTime)
	join := histogram(m.joinWait)
	return Snapshot{
		ThreadsStarted:  uint64(counter(m.started)),
		ThreadsFinished: uint64(counter(m.finished)),
		ThreadsPanicked: uint64(counter(m.panicked)),
		ThreadsDetached: uint64(counter(m.detached)),
		ThreadsRunning:  int64(gauge(m.running)),
		RunSecondsSum:   run.GetSampleSum(),
		Joins:           join.GetSampleCount(),
		JoinWaitSum:     join.GetSampleSum(),
	}
}

func read(c prometheus.Metric) *dto.Metric {
	var pb dto.Metric
	// Write only fails for malformed label sets; these metrics have none.
	_ = c.Write(&pb)
	return &pb
}

func counter(c prometheus.Counter) float64 { return read(c).GetCounter().GetValue() }

func gauge(g prometheus.Gauge) float64 { return read(g).GetGauge().GetValue() }

func histogram(h prometheus.Histogram) *dto.Histogram { return read(h).GetHistogram() }
