package engine

import "errors"

// Rejection categories. No rejection is fatal: the game state is left
// untouched apart from the status text, which always describes the most
// recent attempted action. Callers branch with errors.Is instead of parsing
// the status string.
var (
	// ErrPlayerCount is returned by New for a count outside {2, 3, 4}.
	ErrPlayerCount = errors.New("player count must be 2, 3, or 4")

	// ErrWrongPhase marks an operation invoked outside its required phase.
	ErrWrongPhase = errors.New("operation not allowed in the current phase")

	// ErrGameFinished marks roll or select attempts after the game ended.
	ErrGameFinished = errors.New("game is finished")

	// ErrIllegalToken marks a selection outside the precomputed legal set:
	// a finished token, a yard token on a non-six, or an overshoot of the
	// final cell.
	ErrIllegalToken = errors.New("token cannot move with the pending roll")
)
