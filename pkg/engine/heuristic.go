package engine

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/ludoengine/internal/board"
)

// Heuristic weights. The relative ordering matters (reaching the goal beats
// capturing beats entering beats parking safe beats approaching, with forward
// progress as a small tie-shaper and threatened cells penalized); the exact
// magnitudes are tunable.
const (
	finalBonus     = 100.0
	captureBonus   = 50.0
	enterBonus     = 30.0
	safeBonus      = 20.0
	approachBonus  = 15.0
	progressWeight = 0.25
	threatPenalty  = 12.0
)

// BestMove scores every legally movable token for the pending roll and
// returns the index of the best one. It is a one-ply evaluation, not a
// search, and it never mutates the game. With no pending roll or no legal
// move it returns -1; the former is a caller mistake and is logged at warn
// level. Ties go to the first-enumerated candidate.
func (g *Game) BestMove() int {
	if g.phase != AwaitingSelection || g.pending == 0 {
		log.Warn().Str("phase", g.phase.String()).Msg("best move requested with no pending roll")
		return -1
	}
	if len(g.legal) == 0 {
		return -1
	}

	scores := make([]float64, len(g.legal))
	for i, t := range g.legal {
		scores[i] = g.scoreMove(g.current, g.positions[g.current][t], g.pending)
	}
	return g.legal[floats.MaxIdx(scores)]
}

// scoreMove evaluates moving one token of c from pos with the given roll.
// All bonuses add into a single scalar.
func (g *Game) scoreMove(c Color, pos, roll int) float64 {
	dest := destination(pos, roll)
	score := progressWeight * float64(dest)

	if pos == YardPos {
		score += enterBonus
	}
	if dest == board.FinalIdx {
		// the goal cell is unreachable by opponents, nothing else applies
		return score + finalBonus
	}
	if dest >= board.HomeEntry {
		score += approachBonus
	}

	target := g.board.At(int(c), dest)
	if g.board.SafeAt(target) {
		return score + safeBonus
	}
	if victims := g.captureVictims(c, dest); victims > 0 {
		score += captureBonus * float64(victims)
	}
	return score - threatPenalty*float64(g.threats(c, target))
}

// threats counts opponent tokens that could reach the target cell with their
// own next roll of 1..6. Tokens in the yard cannot threaten anything: they
// enter on their start cell, which is safe.
func (g *Game) threats(c Color, target board.Coord) int {
	count := 0
	for _, o := range g.players {
		if o == c {
			continue
		}
		for _, p := range g.positions[o] {
			if p < 0 || p >= board.HomeEntry {
				continue
			}
			for d := 1; d <= 6; d++ {
				if p+d >= board.HomeEntry {
					break // opponent would be in its exclusive home stretch
				}
				if g.board.At(int(o), p+d) == target {
					count++
					break
				}
			}
		}
	}
	return count
}
