package pack

import (
	"github.com/Sup2point0/natbitset"
)

const (
	// DefaultBlockLen is the default number of bitsets per block.
	DefaultBlockLen = 4096

	// DefaultConcurrency is the default number of blocks compressed at once.
	DefaultConcurrency = 4

	// MaxBlockLen is the largest number of bitsets per block. Decoders reject
	// streams whose header claims more.
	MaxBlockLen = 1 << 20
)

type options struct {
	compression      CompressionType
	blockLen         int
	concurrency      int
	logger           *natbitset.Logger
	metricsCollector MetricsCollector
}

// Option configures an Encoder or Decoder.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		compression:      CompressionLZ4,
		blockLen:         DefaultBlockLen,
		concurrency:      DefaultConcurrency,
		logger:           natbitset.NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithCompression selects the block compression used by an Encoder.
// Decoders read the compression type from the stream header.
func WithCompression(c CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithBlockLen sets the number of bitsets per block.
//
// If n <= 0, DefaultBlockLen is used. Values above MaxBlockLen are clamped.
func WithBlockLen(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultBlockLen
		}
		o.blockLen = min(n, MaxBlockLen)
	}
}

// WithConcurrency limits how many blocks are (de)compressed in parallel.
//
// If n <= 0, DefaultConcurrency is used.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultConcurrency
		}
		o.concurrency = n
	}
}

// WithLogger sets the logger for encode/decode events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *natbitset.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = natbitset.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector that records encode/decode metrics.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
