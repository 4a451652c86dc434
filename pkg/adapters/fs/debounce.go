package fs

import (
	"sync"
	"time"

	"github.com/aretw0/silt/pkg/core"
)

// debouncer coalesces bursts of events for the same document ID.
// Editors typically produce several filesystem events per save; only the last
// one within the interval is delivered.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

// add schedules fn(event) after the interval, replacing any pending delivery
// for the same ID.
func (d *debouncer) add(event core.Event, fn func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[event.ID]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[event.ID] = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.timers, event.ID)
		d.mu.Unlock()

		fn(event)
	})
}

// stopAndWait rejects further events, cancels pending timers and waits for
// in-flight deliveries to finish, up to the timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for id, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, id)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
