package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

var errClientClosed = errors.New("websocket closed by client")

// FeedWriter writes frames to one websocket client.
type FeedWriter struct {
	conn *websocket.Conn
}

func (w *FeedWriter) WriteFrame(frame []byte) error {
	if err := WriteFrame(w.conn, frame); err != nil {
		return errClientClosed
	}
	return nil
}

func (w *FeedWriter) WriteStatus(level, message string) {
	_ = WriteStatus(w.conn, level, message)
}

// StreamWebSocket upgrades to WebSocket and runs streamer until it returns or
// the client goes away, which cancels ctx.
func StreamWebSocket(c fiber.Ctx, streamer func(ctx context.Context, writer *FeedWriter) error) error {
	type requestCtxProvider interface {
		RequestCtx() *fasthttp.RequestCtx
	}

	provider, ok := any(c).(requestCtxProvider)
	if !ok {
		return fiber.ErrInternalServerError
	}

	return Upgrader.Upgrade(provider.RequestCtx(), func(conn *websocket.Conn) {
		defer conn.Close()

		closed := make(chan struct{})
		var once sync.Once
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					once.Do(func() { close(closed) })
					return
				}
			}
		}()

		writer := &FeedWriter{conn: conn}

		streamCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			select {
			case <-closed:
				cancel()
			case <-streamCtx.Done():
			}
		}()

		err := streamer(streamCtx, writer)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errClientClosed) {
			_ = WriteStatus(conn, "error", "event stream failed")
		}

		_ = WriteStatus(conn, "info", "event stream ended")
	})
}
