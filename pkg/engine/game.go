package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yourusername/ludoengine/internal/board"
	"github.com/yourusername/ludoengine/internal/dice"
)

// YardPos is the position of a token still in its home yard.
const YardPos = -1

// maxConsecutiveSixes is the streak length that forfeits the turn.
const maxConsecutiveSixes = 3

// Game is one Ludo game: board geometry, token positions, turn state and
// finish ranking. All operations are synchronous and none of them blocks;
// a Game must not be used from multiple goroutines without external locking.
type Game struct {
	board   *board.Board
	roller  dice.Roller
	players []Color // active colors, turn order
	start   *Color  // fixed starting color, nil = random

	positions [NumColors][TokensPerColor]int
	current   Color
	phase     Phase
	pending   int // 0 = no roll pending
	previous  int // last rolled value, kept for display
	legal     []int
	sixes     int
	ranking   []Color
	status    string

	listeners []Listener
}

// Option configures a Game.
type Option func(*Game)

// WithRoller injects the dice source. Use a scripted roller for
// deterministic replay.
func WithRoller(r dice.Roller) Option {
	return func(g *Game) { g.roller = r }
}

// WithStartColor pins the starting color instead of drawing it at random.
// The pin survives resets.
func WithStartColor(c Color) Option {
	return func(g *Game) { g.start = &c }
}

// New creates a game for 2, 3 or 4 players and leaves it in AwaitingRoll
// with a starting color drawn from the active list.
func New(players int, opts ...Option) (*Game, error) {
	active, err := ActiveColors(players)
	if err != nil {
		return nil, err
	}
	g := &Game{players: active}
	for _, opt := range opts {
		opt(g)
	}
	if g.roller == nil {
		g.roller = dice.New(nil)
	}
	g.reset()
	return g, nil
}

// Reset returns the game to its initial state: geometry rebuilt, all tokens
// in their yards, ranking and dice state cleared, starting color drawn again.
func (g *Game) Reset() {
	g.reset()
	g.publish()
}

func (g *Game) reset() {
	g.board = board.New()
	for c := range g.positions {
		for t := range g.positions[c] {
			g.positions[c][t] = YardPos
		}
	}
	g.ranking = nil
	g.legal = nil
	g.pending = 0
	g.previous = 0
	g.sixes = 0
	g.phase = AwaitingRoll
	if g.start != nil {
		g.current = *g.start
	} else {
		g.current = g.players[g.roller.Roll(len(g.players))-1]
	}
	g.status = fmt.Sprintf("%s to roll", g.current)
}

// Roll draws the die for the current color. It returns the rolled value, the
// already-pending value when called mid-selection, or -1 when the game is
// finished. Three consecutive sixes forfeit the turn; a roll with no legal
// move auto-passes.
func (g *Game) Roll() int {
	defer g.publish()

	if g.phase == Finished {
		g.status = "game is over"
		return -1
	}
	if g.phase == AwaitingSelection || g.pending != 0 {
		g.status = fmt.Sprintf("%s already rolled %d, pick a token", g.current, g.pending)
		return g.pending
	}

	v := g.roller.Roll(6)
	g.pending = v
	g.previous = v
	if v == 6 {
		g.sixes++
	} else {
		g.sixes = 0
	}

	if g.sixes >= maxConsecutiveSixes {
		g.status = fmt.Sprintf("%s rolled three sixes in a row, turn forfeited", g.current)
		g.pending = 0
		g.advance()
		return v
	}

	g.legal = g.movable(g.current, v)
	if len(g.legal) == 0 {
		g.status = fmt.Sprintf("%s rolled %d with no legal move", g.current, v)
		g.pending = 0
		g.advance()
		return v
	}

	g.phase = AwaitingSelection
	g.status = fmt.Sprintf("%s rolled %d", g.current, v)
	return v
}

// Select plays the pending roll with the chosen token. On success it executes
// the move, resolves captures, updates the ranking, and either keeps the turn
// (after a capture or a consumed six) or advances it. A rejection changes
// nothing but the status text.
func (g *Game) Select(token int) error {
	defer g.publish()

	if g.phase == Finished {
		g.status = "game is over"
		return ErrGameFinished
	}
	if g.phase != AwaitingSelection || g.pending == 0 {
		g.status = fmt.Sprintf("%s must roll before moving", g.current)
		return ErrWrongPhase
	}
	if token < 0 || token >= TokensPerColor || !slices.Contains(g.legal, token) {
		g.status = fmt.Sprintf("%s token %d cannot move with a %d", g.current, token, g.pending)
		return ErrIllegalToken
	}

	dest := destination(g.positions[g.current][token], g.pending)
	g.positions[g.current][token] = dest
	captured := g.resolveCaptures(g.current, dest)
	g.updateRanking(g.current)

	wasSix := g.pending == 6
	g.pending = 0
	g.legal = nil

	if len(g.ranking) == len(g.players) {
		g.phase = Finished
		g.status = "game over, finish order: " + rankingString(g.ranking)
		return nil
	}

	switch {
	case captured > 0:
		g.phase = AwaitingRoll
		g.status = fmt.Sprintf("%s captured %d, roll again", g.current, captured)
	case wasSix:
		g.phase = AwaitingRoll
		g.status = fmt.Sprintf("%s played a six, roll again", g.current)
	default:
		g.advance()
		g.status = fmt.Sprintf("%s to roll", g.current)
	}
	return nil
}

// advance hands the turn to the next unranked color in cyclic order, or ends
// the game when none is left. The consecutive-six streak belongs to the
// leaving color and is cleared.
func (g *Game) advance() {
	g.phase = AwaitingRoll
	g.sixes = 0
	cur := slices.Index(g.players, g.current)
	for i := 1; i <= len(g.players); i++ {
		next := g.players[(cur+i)%len(g.players)]
		if !g.Ranked(next) {
			g.current = next
			return
		}
	}
	g.phase = Finished
}

func (g *Game) updateRanking(c Color) {
	if g.Ranked(c) {
		return
	}
	for _, p := range g.positions[c] {
		if p != board.FinalIdx {
			return
		}
	}
	g.ranking = append(g.ranking, c)
}

// Ranked reports whether a color has already finished.
func (g *Game) Ranked(c Color) bool {
	return slices.Contains(g.ranking, c)
}

func rankingString(ranking []Color) string {
	names := make([]string, len(ranking))
	for i, c := range ranking {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// Board exposes the generated geometry for rendering.
func (g *Game) Board() *board.Board {
	return g.board
}

// Players returns the active colors in turn order.
func (g *Game) Players() []Color {
	return slices.Clone(g.players)
}

// Current returns the color to act.
func (g *Game) Current() Color {
	return g.current
}

// Phase returns the current turn state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Status returns the human-readable outcome of the last action.
func (g *Game) Status() string {
	return g.status
}

// TokenCoord resolves a token's grid coordinate through its color's path.
// The second result is false while the token is still in its yard.
func (g *Game) TokenCoord(c Color, token int) (board.Coord, bool) {
	p := g.positions[c][token]
	if p == YardPos {
		return board.Coord{}, false
	}
	return g.board.At(int(c), p), true
}
