// Package otel provides OpenTelemetry observers for managed threads. Each
// thread is traced as one span covering its function; join and detach are
// recorded as span events or short join spans.
package otel
