package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt/pkg/core"
)

func TestSource_BridgesEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	events := make(chan core.Event, 1)
	bridge := NewSource(events)
	require.NoError(t, bridge.Start(ctx))

	events <- core.Event{Type: core.EventModify, ID: "posts/welcome"}

	select {
	case e := <-bridge.Events():
		assert.Equal(t, "MODIFY posts/welcome", e.String())
	case <-ctx.Done():
		t.Fatal("Timed out waiting for bridged event")
	}
}

func TestSource_ClosesWhenUpstreamCloses(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	events := make(chan core.Event)
	bridge := NewSource(events)
	require.NoError(t, bridge.Start(ctx))

	close(events)

	select {
	case _, ok := <-bridge.Events():
		assert.False(t, ok, "bridge output should close with its input")
	case <-ctx.Done():
		t.Fatal("Timed out waiting for close")
	}
}
