package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // allow all origins; restrict behind a proxy in production
	},
}

// wsClient is one WebSocket subscriber. The hub feeds its send channel;
// writePump drains it.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// WebSocket handles GET /api/v1/games/:id/ws. The connection receives the
// current snapshot immediately, then one message per state change. Incoming
// messages are ignored; the REST endpoints drive the game.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.session(r)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "not_found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Str("game", id).Msg("websocket upgrade")
		return
	}

	client := &wsClient{conn: conn, send: make(chan []byte, 16)}
	s.hub.register(client)

	s.mu.Lock()
	snap := s.game.Snapshot()
	s.mu.Unlock()
	go client.writePump()
	if data, err := json.Marshal(snap); err == nil {
		s.hub.send(client, data)
	}

	// readPump: discard client messages until the connection drops
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.hub.unregister(client)
	conn.Close()
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
