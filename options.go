package formkit

import "log/slog"

// Option is a functional option for configuring a session.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for session and field lifecycle events.
// Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// FieldOption is a functional option for configuring a field.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	observer func()
}

func defaultFieldOptions() fieldOptions {
	return fieldOptions{}
}

// WithObserver registers a callback invoked after every externally observable
// change to the field (a new visible error, a cleared error, a synced value).
// Consumers read the new state through Err and Value; the callback itself
// carries no payload so it can be shared across fields of different types.
func WithObserver(fn func()) FieldOption {
	return func(o *fieldOptions) {
		if fn != nil {
			o.observer = fn
		}
	}
}
