package realtime

import (
	"log/slog"

	"github.com/gofiber/websocket/v2"
)

// WebSocketConn wraps websocket.Conn so the hub does not depend on it.
type WebSocketConn struct {
	Conn *websocket.Conn
}

func NewWebSocketConn(c *websocket.Conn) *WebSocketConn {
	return &WebSocketConn{Conn: c}
}

// Serve pumps hub messages to the client until either side goes away.
// Incoming frames are only read to notice the disconnect. Serve returns only
// after the writer has stopped, since the connection is released with the
// handler.
func Serve(h *Hub, client *Client, log *slog.Logger) {
	h.RegisterClient(client)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		// closing the connection ends the read loop below
		defer client.Conn.Conn.Close()
		for msg := range client.Send {
			if err := client.Conn.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug("ws write failed", "client", client.ID, "error", err)
				return
			}
		}
	}()

	for {
		if _, _, err := client.Conn.Conn.ReadMessage(); err != nil {
			log.Debug("ws closed", "client", client.ID, "error", err)
			break
		}
	}
	h.UnregisterClient(client)
	<-writerDone
}
