package pack

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting codec metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordEncode is called after each Encode. count is the number of
	// bitsets, size the number of bytes written.
	RecordEncode(count int, size int64, duration time.Duration, err error)

	// RecordDecode is called after each Decode. count is the number of
	// bitsets decoded.
	RecordDecode(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeSets       atomic.Int64
	EncodeBytes      atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeSets       atomic.Int64
	DecodeTotalNanos atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(count int, size int64, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeSets.Add(int64(count))
	b.EncodeBytes.Add(size)
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(count int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodeSets.Add(int64(count))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EncodeCount:    b.EncodeCount.Load(),
		EncodeErrors:   b.EncodeErrors.Load(),
		EncodeSets:     b.EncodeSets.Load(),
		EncodeBytes:    b.EncodeBytes.Load(),
		EncodeAvgNanos: avg(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:    b.DecodeCount.Load(),
		DecodeErrors:   b.DecodeErrors.Load(),
		DecodeSets:     b.DecodeSets.Load(),
		DecodeAvgNanos: avg(b.DecodeTotalNanos.Load(), b.DecodeCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EncodeCount    int64
	EncodeErrors   int64
	EncodeSets     int64
	EncodeBytes    int64
	EncodeAvgNanos int64
	DecodeCount    int64
	DecodeErrors   int64
	DecodeSets     int64
	DecodeAvgNanos int64
}
