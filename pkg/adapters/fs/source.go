package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/silt/pkg/core"
	"github.com/aretw0/silt/pkg/frontmatter"
)

// DefaultPattern selects the content files a source considers.
const DefaultPattern = "**/*.md"

// defaultEventBuffer is the watch channel capacity when none is configured.
const defaultEventBuffer = 100

// Config holds the configuration for the filesystem source.
type Config struct {
	Root         string
	Pattern      string // doublestar pattern relative to Root; DefaultPattern when empty
	Logger       *slog.Logger
	EventBuffer  int         // watch channel capacity; defaultEventBuffer when zero
	ErrorHandler func(error) // invoked for runtime watcher failures
}

// Source implements core.Source over a directory of content files.
// It is strictly read-only: files are read once per load and never written.
type Source struct {
	Root   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastList      *time.Time
}

// NewSource creates a new filesystem-backed source.
func NewSource(config Config) *Source {
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = defaultEventBuffer
	}
	return &Source{
		Root:   config.Root,
		config: config,
	}
}

// Initialize verifies the content root is readable.
// The source never creates directories: content is authored elsewhere.
func (s *Source) Initialize(ctx context.Context) error {
	info, err := os.Stat(s.Root)
	if os.IsNotExist(err) {
		return fmt.Errorf("content root does not exist: %s", s.Root)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("content root is not a directory: %s", s.Root)
	}
	return nil
}

// Get retrieves a single document by ID.
//
// Workflow:
//  1. Map the ID back to a file path (appending .md when the ID has no extension).
//  2. Read the file once.
//  3. Split front matter from body.
func (s *Source) Get(ctx context.Context, id string) (core.Document, error) {
	filename := filepath.FromSlash(id)
	if filepath.Ext(filename) == "" {
		filename += ".md"
	}

	fullPath := filepath.Join(s.Root, filename)

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Document{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return core.Document{}, err
	}

	doc, err := parseDocument(id, data)
	if err != nil {
		return core.Document{}, err
	}
	return doc, nil
}

// List loads every document matching the configured pattern.
//
// Each parse is a pure function of its own file, so files are parsed in
// parallel with no coordination beyond the bounded group. The result is
// ordered by ID. The first malformed document aborts the load; use Check for
// a full report.
func (s *Source) List(ctx context.Context) ([]core.Document, error) {
	paths, err := s.selectPaths()
	if err != nil {
		return nil, err
	}

	docs := make([]core.Document, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := s.load(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.recordList()
	return docs, nil
}

// Check parses every selected document and reports the ones that failed,
// instead of stopping at the first error. The caller decides whether to skip
// or abort on a malformed document; the source only reports.
func (s *Source) Check(ctx context.Context) ([]core.Issue, error) {
	paths, err := s.selectPaths()
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		issues []core.Issue
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := s.load(path); err != nil {
				mu.Lock()
				issues = append(issues, core.Issue{ID: s.resolveID(path), Err: err})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(issues, func(i, j int) bool { return issues[i].ID < issues[j].ID })
	return issues, nil
}

// Watch starts a supervised watcher emitting an event for every matching file
// that changes. The channel is closed when the watcher stops.
func (s *Source) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = s.config.Pattern
	}

	events := make(chan core.Event, s.config.EventBuffer)
	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

// selectPaths walks the root collecting files that match the pattern,
// skipping hidden directories. Results are sorted for deterministic loads.
func (s *Source) selectPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.Root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if s.matches(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// matches reports whether an absolute path falls under the configured pattern.
func (s *Source) matches(path string) bool {
	rel, err := filepath.Rel(s.Root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(filepath.Base(rel), ".") {
		return false
	}
	ok, err := doublestar.Match(s.config.Pattern, rel)
	return err == nil && ok
}

// load reads and parses one file.
func (s *Source) load(path string) (core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Document{}, err
	}
	return parseDocument(s.resolveID(path), data)
}

// resolveID maps a file path to a document ID: the slash-separated path
// relative to the root, without the .md extension.
func (s *Source) resolveID(path string) string {
	rel, err := filepath.Rel(s.Root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, ".md")
}

// parseDocument splits raw file contents, attaching the document ID to any
// parse failure so malformed documents are reported by name.
func parseDocument(id string, data []byte) (core.Document, error) {
	meta, body, err := frontmatter.Parse(data)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to parse document %s: %w", id, err)
	}
	return core.Document{ID: id, Body: body, Metadata: meta}, nil
}

func (s *Source) recordList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastList = &now
}

var _ core.Source = (*Source)(nil)
var _ core.Checkable = (*Source)(nil)
var _ core.Watchable = (*Source)(nil)
