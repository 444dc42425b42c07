package api

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yourusername/ludoengine/pkg/engine"
)

// Hub fans state snapshots out to a game's subscribers. It implements
// engine.Listener; the engine invokes StateChanged synchronously after every
// mutation, so the hub only queues: WebSocket clients drain their own send
// channels and SSE streams drain theirs. A subscriber too slow to keep up is
// dropped rather than blocking the game.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
	streams map[chan []byte]struct{}
	logger  zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*wsClient]struct{}),
		streams: make(map[chan []byte]struct{}),
		logger:  logger,
	}
}

// StateChanged broadcasts a snapshot to every subscriber.
func (h *Hub) StateChanged(s engine.Snapshot) {
	data, err := json.Marshal(s)
	if err != nil {
		h.logger.Error().Err(err).Msg("marshal snapshot")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn().Msg("dropping slow websocket subscriber")
			delete(h.clients, c)
			close(c.send)
		}
	}
	for ch := range h.streams {
		select {
		case ch <- data:
		default:
			h.logger.Warn().Msg("dropping slow sse subscriber")
			delete(h.streams, ch)
			close(ch)
		}
	}
}

// send delivers one message to a single registered client. It takes the same
// lock as StateChanged so no goroutine can send on a channel the hub has
// already closed while dropping the client.
func (h *Hub) send(c *wsClient, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- data:
	default:
		h.logger.Warn().Msg("dropping slow websocket subscriber")
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) registerStream(ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.streams[ch] = struct{}{}
}

func (h *Hub) unregisterStream(ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.streams[ch]; ok {
		delete(h.streams, ch)
		close(ch)
	}
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) + len(h.streams)
}
