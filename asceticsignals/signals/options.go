package signals

import (
	"log/slog"

	"github.com/oklog/ulid/v2"
)

type Option func(*options)

type options struct {
	logger       *slog.Logger
	id           ulid.ULID
	panicHandler PanicHandler
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == (ulid.ULID{}) {
		o.id = ulid.Make()
	}
	return o
}

// WithLogger sets the logger used for debug tracing and recovered panics.
// By default all logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithID fixes the ID a signal reports in its log records.
func WithID(id ulid.ULID) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithPanicHandler sets a callback invoked for each observer panic recovered by
// NotifyRecover. Notify never recovers.
func WithPanicHandler(handler PanicHandler) Option {
	return func(o *options) {
		o.panicHandler = handler
	}
}
