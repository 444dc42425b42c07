package engine

import "slices"

// Snapshot is a read-only copy of the full observable game state. Positions
// holds every color's tokens indexed by Color; inactive colors stay at
// YardPos. A roll value of 0 means no roll.
type Snapshot struct {
	Players      []Color                        `json:"players"`
	Current      Color                          `json:"current"`
	Phase        Phase                          `json:"phase"`
	Positions    [NumColors][TokensPerColor]int `json:"positions"`
	PendingRoll  int                            `json:"pending_roll"`
	PreviousRoll int                            `json:"previous_roll"`
	LegalMoves   []int                          `json:"legal_moves"`
	Ranking      []Color                        `json:"ranking"`
	Status       string                         `json:"status"`
}

// Snapshot returns a copy of the current state. The copy shares nothing with
// the game; callers may hold it across further moves.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Players:      slices.Clone(g.players),
		Current:      g.current,
		Phase:        g.phase,
		Positions:    g.positions,
		PendingRoll:  g.pending,
		PreviousRoll: g.previous,
		LegalMoves:   slices.Clone(g.legal),
		Ranking:      slices.Clone(g.ranking),
		Status:       g.status,
	}
}
