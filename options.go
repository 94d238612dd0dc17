package succtree

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Tree construction behavior.
type Option func(*options)

// WithLogger configures the logger used for construction diagnostics.
//
// If nil is passed, a no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector invoked after each
// operation.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}
