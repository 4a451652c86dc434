package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt/pkg/core"
)

// setupWatchTest initializes a content root and starts a watcher on it.
func setupWatchTest(t *testing.T) (string, <-chan core.Event, context.Context, context.CancelFunc) {
	t.Helper()
	tmp := t.TempDir()

	source := NewSource(Config{Root: tmp})
	require.NoError(t, source.Initialize(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	events, err := source.Watch(ctx, "")
	require.NoError(t, err, "Watch should be supported")
	require.NotNil(t, events)

	return tmp, events, ctx, cancel
}

func TestWatch_FileCreation(t *testing.T) {
	tmp, events, ctx, cancel := setupWatchTest(t)
	defer cancel()

	// Wait a bit to ensure watcher is ready (naive)
	time.Sleep(100 * time.Millisecond)

	target := filepath.Join(tmp, "test-doc.md")
	content := []byte("---\ntitle: Watched\n---\nHello Watcher")
	require.NoError(t, os.WriteFile(target, content, 0644))

	select {
	case event := <-events:
		assert.Equal(t, "test-doc", event.ID)
		// Create and the write that fills the file land inside one debounce
		// window; either type is acceptable.
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, event.Type)
		assert.NotZero(t, event.Timestamp)
	case <-ctx.Done():
		t.Fatal("Timed out waiting for event")
	}
}

func TestWatch_IgnoresNonMatchingFiles(t *testing.T) {
	tmp, events, ctx, cancel := setupWatchTest(t)
	defer cancel()

	time.Sleep(100 * time.Millisecond)

	// Not selected by the default pattern: no event expected.
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "scratch.txt"), []byte("x"), 0644))
	// Selected: this one must arrive.
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "post.md"), []byte("body"), 0644))

	select {
	case event := <-events:
		assert.Equal(t, "post", event.ID, "only the matching file should produce an event")
	case <-ctx.Done():
		t.Fatal("Timed out waiting for event")
	}
}

func TestWatch_ChannelClosesOnCancel(t *testing.T) {
	_, events, _, cancel := setupWatchTest(t)

	time.Sleep(100 * time.Millisecond)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return // closed, as expected
			}
		case <-deadline:
			t.Fatal("event channel was not closed after cancel")
		}
	}
}

func TestDebouncer_CoalescesSameID(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	got := make(chan core.Event, 10)
	for i := 0; i < 5; i++ {
		d.add(core.Event{Type: core.EventModify, ID: "doc"}, func(e core.Event) {
			got <- e
		})
	}

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("debounced event never delivered")
	}

	select {
	case <-got:
		t.Fatal("burst for one ID should deliver a single event")
	case <-time.After(100 * time.Millisecond):
	}

	d.stopAndWait(time.Second)
}

func TestDebouncer_StopRejectsNewEvents(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)
	d.stopAndWait(time.Second)

	delivered := make(chan struct{}, 1)
	d.add(core.Event{ID: "late"}, func(core.Event) {
		delivered <- struct{}{}
	})

	select {
	case <-delivered:
		t.Fatal("stopped debouncer must not deliver")
	case <-time.After(50 * time.Millisecond):
	}
}
