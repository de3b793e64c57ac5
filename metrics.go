package shorty

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    shortenCounter   prometheus.Counter
//	    resolveHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordShorten(duration time.Duration, err error) {
//	    p.shortenCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordShorten is called after each shorten operation.
	// duration is the total time taken, err is nil if successful.
	RecordShorten(duration time.Duration, err error)

	// RecordBatchShorten is called after each batch shorten operation.
	// count is the number of targets attempted, failed is the number that failed,
	// duration is the total time taken.
	RecordBatchShorten(count, failed int, duration time.Duration)

	// RecordResolve is called after each resolve operation.
	// err is nil if the code resolved to a target.
	RecordResolve(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordShorten(time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatchShorten(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordResolve(time.Duration, error)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ShortenCount       atomic.Int64
	ShortenErrors      atomic.Int64
	ShortenTotalNanos  atomic.Int64
	BatchShortenCount  atomic.Int64
	BatchShortenItems  atomic.Int64
	BatchShortenFailed atomic.Int64
	ResolveCount       atomic.Int64
	ResolveErrors      atomic.Int64
	ResolveTotalNanos  atomic.Int64
}

// RecordShorten implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShorten(duration time.Duration, err error) {
	b.ShortenCount.Add(1)
	b.ShortenTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ShortenErrors.Add(1)
	}
}

// RecordBatchShorten implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchShorten(count, failed int, duration time.Duration) {
	b.BatchShortenCount.Add(1)
	b.BatchShortenItems.Add(int64(count))
	b.BatchShortenFailed.Add(int64(failed))
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(duration time.Duration, err error) {
	b.ResolveCount.Add(1)
	b.ResolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ResolveErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ShortenCount:       b.ShortenCount.Load(),
		ShortenErrors:      b.ShortenErrors.Load(),
		ShortenAvgNanos:    b.getAvgShortenNanos(),
		BatchShortenCount:  b.BatchShortenCount.Load(),
		BatchShortenItems:  b.BatchShortenItems.Load(),
		BatchShortenFailed: b.BatchShortenFailed.Load(),
		ResolveCount:       b.ResolveCount.Load(),
		ResolveErrors:      b.ResolveErrors.Load(),
		ResolveAvgNanos:    b.getAvgResolveNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgShortenNanos() int64 {
	count := b.ShortenCount.Load()
	if count == 0 {
		return 0
	}
	return b.ShortenTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgResolveNanos() int64 {
	count := b.ResolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.ResolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ShortenCount       int64
	ShortenErrors      int64
	ShortenAvgNanos    int64
	BatchShortenCount  int64
	BatchShortenItems  int64
	BatchShortenFailed int64
	ResolveCount       int64
	ResolveErrors      int64
	ResolveAvgNanos    int64
}
