package ws

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"webhookrepo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(author string) models.EventRecord {
	return models.EventRecord{
		Type:      models.EventTypePush,
		Author:    author,
		ToBranch:  "main",
		Message:   `"` + author + `" pushed to "main"`,
		CreatedAt: time.Date(2024, time.January, 5, 10, 30, 0, 0, time.UTC),
	}
}

func TestHubForwardsPublishedRecords(t *testing.T) {
	hub := NewHub(nil)
	s := hub.subscribe()
	require.Equal(t, 1, hub.Clients())

	var mu sync.Mutex
	var frames [][]byte

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- hub.forward(ctx, s, func(frame []byte) error {
			mu.Lock()
			defer mu.Unlock()
			frames = append(frames, frame)
			return nil
		})
	}()

	hub.Publish(sampleRecord("alice"))
	hub.Publish(sampleRecord("bob"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(frames) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	var frame EventFrame
	require.NoError(t, json.Unmarshal(frames[0], &frame))
	assert.Equal(t, "event", frame.Type)
	assert.Equal(t, "alice", frame.Event.Author)

	hub.unsubscribe(s)
	assert.Equal(t, 0, hub.Clients())
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub(nil)
	slow := hub.subscribe()

	for i := 0; i < clientBuffer+1; i++ {
		hub.Publish(sampleRecord("alice"))
	}

	assert.Equal(t, 0, hub.Clients())

	drained := 0
	for range slow.send {
		drained++
	}
	assert.Equal(t, clientBuffer, drained)

	// Unsubscribing an already dropped client must not double close.
	assert.NotPanics(t, func() { hub.unsubscribe(slow) })
}

func TestHubPublishWithoutClients(t *testing.T) {
	hub := NewHub(nil)
	assert.NotPanics(t, func() { hub.Publish(sampleRecord("alice")) })
}
