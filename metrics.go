package fisika

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordConvert is called after each Convert call.
	// quantity is empty when the units did not resolve.
	RecordConvert(quantity string, duration time.Duration, err error)

	// RecordParse is called after each Parse call.
	RecordParse(quantity string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConvert(string, time.Duration, error) {}
func (NoopMetricsCollector) RecordParse(string, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConvertCount      atomic.Int64
	ConvertErrors     atomic.Int64
	ConvertTotalNanos atomic.Int64
	ParseCount        atomic.Int64
	ParseErrors       atomic.Int64
	ParseTotalNanos   atomic.Int64
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(_ string, duration time.Duration, err error) {
	b.ConvertCount.Add(1)
	b.ConvertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConvertErrors.Add(1)
	}
}

// RecordParse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParse(_ string, duration time.Duration, err error) {
	b.ParseCount.Add(1)
	b.ParseTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ParseErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConvertCount:    b.ConvertCount.Load(),
		ConvertErrors:   b.ConvertErrors.Load(),
		ConvertAvgNanos: avgNanos(b.ConvertTotalNanos.Load(), b.ConvertCount.Load()),
		ParseCount:      b.ParseCount.Load(),
		ParseErrors:     b.ParseErrors.Load(),
		ParseAvgNanos:   avgNanos(b.ParseTotalNanos.Load(), b.ParseCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConvertCount    int64
	ConvertErrors   int64
	ConvertAvgNanos int64
	ParseCount      int64
	ParseErrors     int64
	ParseAvgNanos   int64
}
