package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/matryer/way"
	"github.com/rs/zerolog"

	"github.com/yourusername/ludoengine/internal/dice"
	"github.com/yourusername/ludoengine/pkg/engine"
)

// session binds one game to its snapshot hub. The engine itself is
// single-threaded; the mutex serializes HTTP access to it.
type session struct {
	mu   sync.Mutex
	game *engine.Game
	hub  *Hub
}

// Handlers holds the HTTP handlers and the game session registry.
type Handlers struct {
	mu       sync.RWMutex
	sessions map[string]*session
	version  string
	logger   zerolog.Logger
}

// NewHandlers creates a Handlers instance with an empty registry.
func NewHandlers(version string, logger zerolog.Logger) *Handlers {
	return &Handlers{
		sessions: make(map[string]*session),
		version:  version,
		logger:   logger,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, msg string, code string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// errCode maps an engine rejection to a stable machine-readable code.
func errCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrPlayerCount):
		return "bad_player_count"
	case errors.Is(err, engine.ErrWrongPhase):
		return "wrong_phase"
	case errors.Is(err, engine.ErrGameFinished):
		return "game_finished"
	case errors.Is(err, engine.ErrIllegalToken):
		return "illegal_token"
	default:
		return "internal"
	}
}

func (h *Handlers) session(r *http.Request) (*session, string, bool) {
	id := way.Param(r.Context(), "id")
	h.mu.RLock()
	s, ok := h.sessions[id]
	h.mu.RUnlock()
	return s, id, ok
}

// CreateGame handles POST /api/v1/games.
func (h *Handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "bad_request")
		return
	}

	opts := []engine.Option{}
	if req.Seed != 0 {
		opts = append(opts, engine.WithRoller(dice.New(&dice.Config{Seed: req.Seed})))
	}
	game, err := engine.New(req.Players, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), errCode(err))
		return
	}

	s := &session{game: game, hub: NewHub(h.logger)}
	game.Subscribe(s.hub)

	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = s
	h.mu.Unlock()

	h.logger.Info().Str("game", id).Int("players", req.Players).Msg("game created")
	writeJSON(w, http.StatusCreated, GameResponse{ID: id, State: game.Snapshot()})
}

// GetState handles GET /api/v1/games/:id.
func (h *Handlers) GetState(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.session(r)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "not_found")
		return
	}
	s.mu.Lock()
	snap := s.game.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, GameResponse{ID: id, State: snap})
}

// Roll handles POST /api/v1/games/:id/roll.
func (h *Handlers) Roll(w http.ResponseWriter, r *http.Request) {
	s, _, ok := h.session(r)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "not_found")
		return
	}
	s.mu.Lock()
	value := s.game.Roll()
	snap := s.game.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, RollResponse{Value: value, State: snap})
}

// Select handles POST /api/v1/games/:id/select.
func (h *Handlers) Select(w http.ResponseWriter, r *http.Request) {
	s, _, ok := h.session(r)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "not_found")
		return
	}
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "bad_request")
		return
	}

	s.mu.Lock()
	err := s.game.Select(req.Token)
	snap := s.game.Snapshot()
	s.mu.Unlock()

	if err != nil {
		writeError(w, http.StatusConflict, snap.Status, errCode(err))
		return
	}
	writeJSON(w, http.StatusOK, GameResponse{State: snap})
}

// BestMove handles GET /api/v1/games/:id/bestmove.
func (h *Handlers) BestMove(w http.ResponseWriter, r *http.Request) {
	s, _, ok := h.session(r)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "not_found")
		return
	}
	s.mu.Lock()
	token := s.game.BestMove()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, BestMoveResponse{Token: token})
}

// Reset handles POST /api/v1/games/:id/reset.
func (h *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.session(r)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "not_found")
		return
	}
	s.mu.Lock()
	s.game.Reset()
	snap := s.game.Snapshot()
	s.mu.Unlock()
	h.logger.Info().Str("game", id).Msg("game reset")
	writeJSON(w, http.StatusOK, GameResponse{ID: id, State: snap})
}

// DeleteGame handles DELETE /api/v1/games/:id.
func (h *Handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	s, id, ok := h.session(r)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "not_found")
		return
	}
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()

	s.mu.Lock()
	s.game.Unsubscribe(s.hub)
	s.mu.Unlock()

	h.logger.Info().Str("game", id).Msg("game deleted")
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /api/v1/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	games := len(h.sessions)
	h.mu.RUnlock()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Games:   games,
	})
}
