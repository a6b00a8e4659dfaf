// Package ws pushes newly stored events to websocket clients.
package ws

import (
	"encoding/json"

	githubws "github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
)

// Upgrader upgrades HTTP connections to WebSocket connections.
var Upgrader = githubws.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		return true
	},
}

// WriteStatus sends a status message to the websocket client.
func WriteStatus(conn *githubws.Conn, status string, message string) error {
	payload, err := json.Marshal(map[string]string{
		"type":    status,
		"message": message,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}

// WriteFrame sends an already encoded JSON frame to the websocket client.
func WriteFrame(conn *githubws.Conn, frame []byte) error {
	return conn.WriteMessage(githubws.TextMessage, frame)
}
