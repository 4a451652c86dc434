// Package silt is the Composition Root for the Silt loader.
//
// It connects the core domain (documents, the loading service) with the
// infrastructure adapters (filesystem source, watcher) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// Silt is the read side of a static site: it treats a folder of posts as an
// immutable content collection, splitting each file into a front matter
// mapping and a raw body for an external renderer to consume. It never
// writes, never renders, and never resolves the snippet placeholders embedded
// in body text.
//
// Features:
//
//   - **Front Matter First**: `---` delimited headers parsed into a flat mapping.
//   - **Strict on Malformed Input**: an opened block that never closes is an
//     error naming the offending document; prose without a header is just prose.
//   - **Pure, Parallel Loads**: each parse is a pure function of one file, so
//     collections load concurrently with no coordination.
//   - **Reactive**: watch support built on fsnotify with debounced events.
//   - **Extensible**: any backend can serve content via `core.Source`.
//
// Usage:
//
//	// Initialize the service with functional options
//	svc, err := silt.New("./content",
//		silt.WithPattern("posts/**/*.md"),
//		silt.WithLogger(logger),
//	)
//
//	// Load a post
//	doc, err := svc.LoadDocument(ctx, "posts/2015-01-24-welcome")
package silt
