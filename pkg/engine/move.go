package engine

import "github.com/yourusername/ludoengine/internal/board"

// eligible reports whether a token at pos may play the given roll. Finished
// tokens never move, yard tokens enter only on a six, and a move past the
// final cell is illegal (no bounce rule).
func eligible(pos, roll int) bool {
	switch {
	case pos == board.FinalIdx:
		return false
	case pos == YardPos:
		return roll == 6
	default:
		return pos+roll <= board.FinalIdx
	}
}

// destination computes the new position of an eligible token. Entering from
// the yard lands on the start cell.
func destination(pos, roll int) int {
	if pos == YardPos {
		return 0
	}
	return pos + roll
}

// movable returns the token indices of c that can legally play the roll.
func (g *Game) movable(c Color, roll int) []int {
	var tokens []int
	for t, p := range g.positions[c] {
		if eligible(p, roll) {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// resolveCaptures sends home every opponent token occupying the mover's
// destination cell and returns how many were sent. Final and safe cells are
// capture-free. Coordinates are compared through each color's own path, so
// two colors meeting on the shared ring compare equal even though their
// track indices differ.
func (g *Game) resolveCaptures(mover Color, dest int) int {
	if dest == board.FinalIdx {
		return 0
	}
	target := g.board.At(int(mover), dest)
	if g.board.SafeAt(target) {
		return 0
	}

	captured := 0
	for _, c := range g.players {
		if c == mover {
			continue
		}
		for t, p := range g.positions[c] {
			if p == YardPos || p == board.FinalIdx {
				continue
			}
			if g.board.At(int(c), p) == target {
				g.positions[c][t] = YardPos
				captured++
			}
		}
	}
	return captured
}

// captureVictims counts, without mutating anything, the opponents the mover
// would capture by landing on dest.
func (g *Game) captureVictims(mover Color, dest int) int {
	if dest == board.FinalIdx {
		return 0
	}
	target := g.board.At(int(mover), dest)
	if g.board.SafeAt(target) {
		return 0
	}

	victims := 0
	for _, c := range g.players {
		if c == mover {
			continue
		}
		for _, p := range g.positions[c] {
			if p == YardPos || p == board.FinalIdx {
				continue
			}
			if g.board.At(int(c), p) == target {
				victims++
			}
		}
	}
	return victims
}
