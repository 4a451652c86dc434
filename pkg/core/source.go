package core

import "context"

// Source defines the contract for loading documents.
// Adhering to this interface allows the core to be independent of where the
// content actually lives (Filesystem, archive, embedded FS, HTTP, etc).
// Sources are read-only: documents are authored elsewhere and only consumed here.
type Source interface {
	// Get retrieves a document by its ID.
	Get(ctx context.Context, id string) (Document, error)

	// List returns all available documents.
	List(ctx context.Context) ([]Document, error)

	// Initialize ensures the underlying storage is readable (e.g. the content
	// root exists and is a directory).
	Initialize(ctx context.Context) error
}

// Issue pairs a document identifier with the error its parse produced.
type Issue struct {
	ID  string
	Err error
}

// Checkable defines an interface for sources that can validate every document
// without stopping at the first failure.
type Checkable interface {
	// Check parses every selected document and reports the ones that failed.
	Check(ctx context.Context) ([]Issue, error)
}

// Watchable defines an interface for sources that can observe changes to the
// underlying content.
type Watchable interface {
	// Watch emits an event for every document matching pattern that changes.
	// The channel is closed when the watcher stops.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
