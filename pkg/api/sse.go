package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Events handles GET /api/v1/games/:id/events, a Server-Sent Events stream
// of state snapshots: the current state on connect, then one event per
// mutation until the client goes away.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.session(r)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "not_found")
		return
	}

	flusher, okFlush := w.(http.Flusher)
	if !okFlush {
		writeError(w, http.StatusInternalServerError, "streaming not supported", "no_streaming")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	ch := make(chan []byte, 16)
	s.hub.registerStream(ch)
	defer s.hub.unregisterStream(ch)

	s.mu.Lock()
	snap := s.game.Snapshot()
	s.mu.Unlock()
	if data, err := json.Marshal(snap); err == nil {
		writeSSEEvent(w, "state", data)
		flusher.Flush()
	}

	h.logger.Debug().Str("game", id).Msg("sse subscriber connected")
	for {
		select {
		case data, open := <-ch:
			if !open {
				return
			}
			writeSSEEvent(w, "state", data)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

// writeSSEEvent writes one Server-Sent Event to the response.
func writeSSEEvent(w http.ResponseWriter, event string, data []byte) {
	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", data)
}
