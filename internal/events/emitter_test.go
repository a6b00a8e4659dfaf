package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"webhookrepo/internal/ingest"
	"webhookrepo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	mu      sync.Mutex
	one     []models.Delivery
	batches [][]models.Delivery
}

func (s *sink) insertOne(_ context.Context, d models.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.one = append(s.one, d)
	return nil
}

func (s *sink) insertMany(_ context.Context, ds []models.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, ds)
	return nil
}

func (s *sink) all() []models.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Delivery
	out = append(out, s.one...)
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return out
}

func TestNilEmitterIsSafe(t *testing.T) {
	var e *Emitter

	assert.NotPanics(t, func() {
		e.Emit(models.Delivery{})
		e.WebhookDelivered("d", ingest.Outcome{})
		e.WebhookRejected("d", "", errors.New("x"))
		e.Close()
	})
}

func TestCloseFlushesPendingEntries(t *testing.T) {
	s := &sink{}
	e := NewEmitterWithInserters(Config{Buffer: 10, BatchSize: 50, FlushEvery: time.Hour}, nil, s.insertOne, s.insertMany)

	for i := 0; i < 3; i++ {
		e.Emit(models.Delivery{Action: ActionDeliveryIgnored})
	}
	e.Close()

	require.Len(t, s.batches, 1)
	assert.Len(t, s.batches[0], 3)
	assert.False(t, s.batches[0][0].TimeStamp.IsZero())
}

func TestBatchSizeTriggersFlush(t *testing.T) {
	s := &sink{}
	e := NewEmitterWithInserters(Config{Buffer: 10, BatchSize: 2, FlushEvery: time.Hour}, nil, s.insertOne, s.insertMany)
	defer e.Close()

	e.Emit(models.Delivery{})
	e.Emit(models.Delivery{})

	require.Eventually(t, func() bool { return len(s.all()) == 2 }, time.Second, 10*time.Millisecond)
}

func TestTimerTriggersFlush(t *testing.T) {
	s := &sink{}
	e := NewEmitterWithInserters(fastConfig, nil, s.insertOne, s.insertMany)
	defer e.Close()

	e.Emit(models.Delivery{})

	require.Eventually(t, func() bool { return len(s.all()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestFullBufferFallsBackToInsertOne(t *testing.T) {
	s := &sink{}
	block := make(chan struct{})
	insertMany := func(ctx context.Context, ds []models.Delivery) error {
		<-block
		return s.insertMany(ctx, ds)
	}

	e := NewEmitterWithInserters(Config{Buffer: 1, BatchSize: 1, FlushEvery: time.Hour}, nil, s.insertOne, insertMany)

	// The first entry parks the worker inside insertMany, the second fills
	// the buffer, the third must be written synchronously.
	e.Emit(models.Delivery{DeliveryID: "1"})
	require.Eventually(t, func() bool { return len(e.buf) == 0 }, time.Second, time.Millisecond)
	e.Emit(models.Delivery{DeliveryID: "2"})
	e.Emit(models.Delivery{DeliveryID: "3"})

	s.mu.Lock()
	require.Len(t, s.one, 1)
	assert.Equal(t, "3", s.one[0].DeliveryID)
	s.mu.Unlock()

	close(block)
	e.Close()
	assert.Len(t, s.all(), 3)
}

func TestWebhookDeliveredActions(t *testing.T) {
	s := &sink{}
	e := NewEmitterWithInserters(Config{Buffer: 10, BatchSize: 50, FlushEvery: time.Hour}, nil, s.insertOne, s.insertMany)

	record := &models.EventRecord{Type: models.EventTypePush, Message: `"alice" pushed to "main"`}

	e.WebhookDelivered("d-1", ingest.Outcome{EventType: "push", Record: record, Stored: true})
	e.WebhookDelivered("d-2", ingest.Outcome{EventType: "push", Record: record, Err: errors.New("mongo down")})
	e.WebhookDelivered("d-3", ingest.Outcome{EventType: "pull_request"})
	e.WebhookRejected("d-4", "", ingest.ErrMissingEventType)
	e.Close()

	got := s.all()
	require.Len(t, got, 4)

	assert.Equal(t, ActionDeliveryStored, got[0].Action)
	assert.Equal(t, models.EventTypePush, got[0].RecordType)
	assert.Equal(t, `"alice" pushed to "main"`, got[0].Props["message"])

	assert.Equal(t, ActionDeliveryFailed, got[1].Action)
	assert.Equal(t, "mongo down", got[1].Props["error"])

	assert.Equal(t, ActionDeliveryIgnored, got[2].Action)
	assert.Empty(t, got[2].RecordType)

	assert.Equal(t, ActionDeliveryRejected, got[3].Action)
	assert.Equal(t, "no event type found", got[3].Props["error"])
}
