package ws

import (
	"context"
	"encoding/json"
	"sync"

	"webhookrepo/internal/models"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// clientBuffer is how many frames a slow client may lag behind before it is dropped.
const clientBuffer = 16

// EventFrame is the JSON frame pushed for every stored record.
type EventFrame struct {
	Type  string             `json:"type"`
	Event models.EventRecord `json:"event"`
}

type subscriber struct {
	send chan []byte
}

// Hub fans stored records out to every connected feed client. Publishing never
// blocks; a client whose buffer is full is disconnected.
type Hub struct {
	mu      sync.Mutex
	clients map[*subscriber]struct{}
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Hub{
		clients: make(map[*subscriber]struct{}),
		logger:  logger,
	}
}

// Publish implements ingest.Listener.
func (h *Hub) Publish(record models.EventRecord) {
	frame, err := json.Marshal(EventFrame{Type: "event", Event: record})
	if err != nil {
		h.logger.Error("failed to encode event frame", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.clients {
		select {
		case s.send <- frame:
		default:
			delete(h.clients, s)
			close(s.send)
			h.logger.Warn("dropping slow event feed client")
		}
	}
}

// Clients reports how many feed clients are connected.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

func (h *Hub) subscribe() *subscriber {
	s := &subscriber{send: make(chan []byte, clientBuffer)}

	h.mu.Lock()
	h.clients[s] = struct{}{}
	h.mu.Unlock()

	return s
}

func (h *Hub) unsubscribe(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[s]; ok {
		delete(h.clients, s)
		close(s.send)
	}
}

// forward copies frames from s to write until ctx ends or s is dropped.
func (h *Hub) forward(ctx context.Context, s *subscriber, write func([]byte) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame, ok := <-s.send:
			if !ok {
				return nil
			}
			if err := write(frame); err != nil {
				return err
			}
		}
	}
}

// Handler upgrades the request and streams stored records until the client leaves.
func (h *Hub) Handler(c fiber.Ctx) error {
	return StreamWebSocket(c, func(ctx context.Context, writer *FeedWriter) error {
		s := h.subscribe()
		defer h.unsubscribe(s)

		writer.WriteStatus("info", "subscribed to event stream")

		return h.forward(ctx, s, writer.WriteFrame)
	})
}
