package platform

import (
	"log/slog"

	"github.com/aretw0/silt/pkg/core"
)

// options holds the internal configuration for the loader.
type options struct {
	source              core.Source
	logger              *slog.Logger
	pattern             string
	eventBuffer         int
	watcherErrorHandler func(error)
}

// Option defines a functional option for configuring the loader.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithPattern sets the doublestar pattern used to select content files.
// Defaults to "**/*.md" if not set (handled by the adapter).
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource allows injecting a custom content source (e.g. mock, embedded FS).
// If provided, the default filesystem adapter will be skipped.
func WithSource(source core.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithEventBuffer allows specifying the size of the watch channel buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring during the
// watch loop. This allows applications to react to runtime watcher failures
// (e.g. permission denied) which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.watcherErrorHandler = fn
	}
}
