// Package api provides the HTTP/JSON surface for the Ludo engine: a REST
// interface for driving games plus WebSocket and SSE channels that stream
// state snapshots to subscribers after every mutation.
package api

import "github.com/yourusername/ludoengine/pkg/engine"

// CreateGameRequest is the request body for creating a game.
type CreateGameRequest struct {
	Players int   `json:"players"`        // 2, 3 or 4
	Seed    int64 `json:"seed,omitempty"` // optional, for reproducible games
}

// GameResponse wraps a game identifier and its current state.
type GameResponse struct {
	ID    string          `json:"id"`
	State engine.Snapshot `json:"state"`
}

// RollResponse is returned by the roll endpoint. Value is -1 when the roll
// was rejected.
type RollResponse struct {
	Value int             `json:"value"`
	State engine.Snapshot `json:"state"`
}

// SelectRequest is the request body for playing the pending roll.
type SelectRequest struct {
	Token int `json:"token"` // token index 0..3
}

// BestMoveResponse is the heuristic recommendation. Token is -1 when there
// is nothing to recommend.
type BestMoveResponse struct {
	Token int `json:"token"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Games   int    `json:"games"`
}
