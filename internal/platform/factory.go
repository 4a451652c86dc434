package platform

import (
	"context"

	"github.com/aretw0/silt/pkg/adapters/fs"
	"github.com/aretw0/silt/pkg/core"
)

// Open initializes a content source for the given root directory.
// The root must already exist: the loader is read-only and never creates it.
func Open(root string, opts ...Option) (core.Source, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	source := o.source
	if source == nil {
		source = fs.NewSource(fs.Config{
			Root:         root,
			Pattern:      o.pattern,
			Logger:       o.logger,
			EventBuffer:  o.eventBuffer,
			ErrorHandler: o.watcherErrorHandler,
		})
	}

	if err := source.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return source, nil
}

// New creates the loader service for the given content root.
//
//	svc, err := silt.New("./content", silt.WithPattern("posts/**/*.md"))
func New(root string, opts ...Option) (*core.Service, error) {
	source, err := Open(root, opts...)
	if err != nil {
		return nil, err
	}

	return core.NewService(source), nil
}
