package silt

import (
	"log/slog"

	"github.com/aretw0/silt/internal/platform"
	"github.com/aretw0/silt/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Document is a public alias for the domain document.
type Document = core.Document

// Metadata is a public alias for the front matter mapping.
type Metadata = core.Metadata

// Event is a public alias for a content change event.
type Event = core.Event

// Issue is a public alias for one entry of a malformed-document report.
type Issue = core.Issue

// --- Configuration ---

// Option defines a functional option for configuring the loader.
type Option = platform.Option

// WithPattern sets the doublestar pattern used to select content files.
func WithPattern(pattern string) Option {
	return platform.WithPattern(pattern)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource allows injecting a custom content source.
func WithSource(source core.Source) Option {
	return platform.WithSource(source)
}

// WithEventBuffer allows specifying the size of the watch channel buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new loader Service for a content root.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// Open initializes a content source explicitly.
func Open(root string, opts ...Option) (core.Source, error) {
	return platform.Open(root, opts...)
}
