package fisika

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	quantities       []string
	precision        int
}

// Option configures a Converter.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// conversions and parses. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fisika.BasicMetricsCollector{}
//	c, _ := fisika.New(fisika.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Converts: %d, Avg latency: %dns\n", stats.ConvertCount, stats.ConvertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fisika.NewJSONLogger(slog.LevelDebug)
//	c, _ := fisika.New(fisika.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithQuantities restricts the Converter to the named quantities (or their
// aliases, e.g. "Weight"). Unit names then resolve only among those.
func WithQuantities(names ...string) Option {
	return func(o *options) {
		o.quantities = append(o.quantities, names...)
	}
}

// WithPrecision sets the number of digits after the decimal point that Format
// prints. A negative value prints the fewest digits that read back exactly.
func WithPrecision(prec int) Option {
	return func(o *options) {
		o.precision = prec
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		precision:        -1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
