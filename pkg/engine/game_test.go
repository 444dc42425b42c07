package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/ludoengine/internal/board"
	"github.com/yourusername/ludoengine/internal/dice"
)

// newTestGame builds a game with a pinned starting color and scripted rolls.
func newTestGame(t *testing.T, players int, start Color, rolls ...int) *Game {
	t.Helper()
	opts := []Option{WithStartColor(start)}
	if len(rolls) > 0 {
		opts = append(opts, WithRoller(dice.NewSequence(rolls...)))
	}
	g, err := New(players, opts...)
	require.NoError(t, err)
	return g
}

func TestNewRejectsBadPlayerCount(t *testing.T) {
	for _, n := range []int{0, 1, 5, -2} {
		_, err := New(n)
		require.ErrorIs(t, err, ErrPlayerCount, "players=%d", n)
	}
}

func TestNewInitialState(t *testing.T) {
	g := newTestGame(t, 4, Blue)
	snap := g.Snapshot()

	require.Equal(t, []Color{Blue, Red, Green, Yellow}, snap.Players)
	require.Equal(t, Blue, snap.Current)
	require.Equal(t, AwaitingRoll, snap.Phase)
	require.Zero(t, snap.PendingRoll)
	require.Empty(t, snap.Ranking)
	for c := range snap.Positions {
		for _, p := range snap.Positions[c] {
			require.Equal(t, YardPos, p)
		}
	}
}

func TestEnterOnSix(t *testing.T) {
	g := newTestGame(t, 2, Blue, 6)

	require.Equal(t, 6, g.Roll())
	require.Equal(t, AwaitingSelection, g.Phase())
	require.Equal(t, []int{0, 1, 2, 3}, g.Snapshot().LegalMoves)

	require.NoError(t, g.Select(0))
	require.Equal(t, 0, g.positions[Blue][0])
	// entered on a six, blue rolls again
	require.Equal(t, Blue, g.Current())
	require.Equal(t, AwaitingRoll, g.Phase())
}

func TestNonSixCannotLeaveYard(t *testing.T) {
	g := newTestGame(t, 2, Blue, 3)

	require.Equal(t, 3, g.Roll())
	require.Equal(t, YardPos, g.positions[Blue][0])
	// auto-pass: no legal move for blue
	require.Equal(t, Green, g.Current())
	require.Equal(t, AwaitingRoll, g.Phase())
	require.Zero(t, g.Snapshot().PendingRoll)
	require.Equal(t, 3, g.Snapshot().PreviousRoll)
}

func TestThreeSixesForfeitTurn(t *testing.T) {
	g := newTestGame(t, 2, Blue, 6, 6, 6)

	g.Roll()
	require.NoError(t, g.Select(0)) // enter
	g.Roll()
	require.NoError(t, g.Select(0)) // 0 -> 6
	require.Equal(t, Blue, g.Current())
	require.Equal(t, 2, g.sixes)

	g.Roll() // third consecutive six
	require.Equal(t, Green, g.Current())
	require.Equal(t, AwaitingRoll, g.Phase())
	require.Zero(t, g.pending)
	require.Zero(t, g.sixes)
	// the forfeited roll was never played
	require.Equal(t, 6, g.positions[Blue][0])
}

func TestRedundantRollEchoesPendingValue(t *testing.T) {
	g := newTestGame(t, 2, Blue, 6, 1)

	require.Equal(t, 6, g.Roll())
	require.Equal(t, AwaitingSelection, g.Phase())
	// second roll must not draw from the dice
	require.Equal(t, 6, g.Roll())
	require.Equal(t, 6, g.Snapshot().PendingRoll)
	require.Equal(t, []int{0, 1, 2, 3}, g.Snapshot().LegalMoves)
}

func TestQuietMovePassesTurn(t *testing.T) {
	g := newTestGame(t, 2, Blue, 2)
	g.positions[Blue][0] = 5

	require.Equal(t, 2, g.Roll())
	require.NoError(t, g.Select(0))
	require.Equal(t, 7, g.positions[Blue][0])
	require.Equal(t, Green, g.Current())
	require.Equal(t, AwaitingRoll, g.Phase())
}

func TestSelectRejectionsLeaveStateUntouched(t *testing.T) {
	g := newTestGame(t, 2, Blue, 5)
	g.positions[Blue][0] = 53 // 53+5 overshoots the final cell
	g.positions[Blue][1] = 10

	require.Equal(t, 5, g.Roll())
	require.Equal(t, []int{1}, g.Snapshot().LegalMoves)

	before := g.Snapshot()
	require.ErrorIs(t, g.Select(0), ErrIllegalToken)
	require.Equal(t, 53, g.positions[Blue][0])
	require.Equal(t, before.PendingRoll, g.Snapshot().PendingRoll)
	require.Equal(t, before.Phase, g.Snapshot().Phase)

	require.ErrorIs(t, g.Select(7), ErrIllegalToken)
	require.ErrorIs(t, g.Select(-1), ErrIllegalToken)

	require.NoError(t, g.Select(1))
	require.Equal(t, 15, g.positions[Blue][1])
}

func TestSelectBeforeRollRejected(t *testing.T) {
	g := newTestGame(t, 2, Blue)
	require.ErrorIs(t, g.Select(0), ErrWrongPhase)
	require.Equal(t, AwaitingRoll, g.Phase())
}

func TestCaptureSendsOpponentHomeAndGrantsExtraTurn(t *testing.T) {
	g := newTestGame(t, 4, Blue, 5)
	// blue step 15 and red step 2 are the same physical ring cell
	g.positions[Blue][0] = 10
	g.positions[Red][0] = 2

	require.Equal(t, 5, g.Roll())
	require.NoError(t, g.Select(0))

	require.Equal(t, 15, g.positions[Blue][0])
	require.Equal(t, YardPos, g.positions[Red][0])
	require.Equal(t, Blue, g.Current(), "capture grants another roll")
	require.Equal(t, AwaitingRoll, g.Phase())
}

func TestCaptureMultipleOpponentsOnOneCell(t *testing.T) {
	g := newTestGame(t, 4, Blue, 5)
	g.positions[Blue][0] = 10
	g.positions[Red][0] = 2
	g.positions[Red][1] = 2

	g.Roll()
	require.NoError(t, g.Select(0))
	require.Equal(t, YardPos, g.positions[Red][0])
	require.Equal(t, YardPos, g.positions[Red][1])
	require.Equal(t, Blue, g.Current())
}

// Red moving to its step 49 lands on the cell blue occupies at step 10.
func TestCaptureAcrossAliasedPaths(t *testing.T) {
	g := newTestGame(t, 4, Red, 5)
	g.positions[Red][0] = 44
	g.positions[Blue][0] = 10
	require.Equal(t,
		g.Board().At(int(Red), 49),
		g.Board().At(int(Blue), 10),
		"fixture: paths must alias")

	g.Roll()
	require.NoError(t, g.Select(0))
	require.Equal(t, 49, g.positions[Red][0])
	require.Equal(t, YardPos, g.positions[Blue][0])
	require.Equal(t, Red, g.Current())
}

func TestNoCaptureOnSafeCell(t *testing.T) {
	g := newTestGame(t, 4, Blue, 5)
	// blue step 13 is safe; it is also red's start cell
	g.positions[Blue][0] = 8
	g.positions[Red][0] = 0
	require.True(t, g.Board().SafeAt(g.Board().At(int(Blue), 13)))

	g.Roll()
	require.NoError(t, g.Select(0))
	require.Equal(t, 13, g.positions[Blue][0])
	require.Equal(t, 0, g.positions[Red][0], "safe cell must not capture")
	require.Equal(t, Red, g.Current(), "no capture, no six: turn passes")
}

func TestNoCaptureOnFinalCell(t *testing.T) {
	g := newTestGame(t, 2, Blue, 5)
	g.positions[Blue][0] = 51

	g.Roll()
	require.NoError(t, g.Select(0))
	require.Equal(t, board.FinalIdx, g.positions[Blue][0])
	require.Equal(t, Green, g.Current())
}

func TestRankingAndFinish(t *testing.T) {
	g := newTestGame(t, 2, Blue, 3, 6)
	g.positions[Blue] = [TokensPerColor]int{56, 56, 56, 53}
	g.positions[Green] = [TokensPerColor]int{56, 56, 56, 50}

	require.Equal(t, 3, g.Roll())
	require.NoError(t, g.Select(3))
	require.Equal(t, []Color{Blue}, g.Snapshot().Ranking)
	require.Equal(t, Green, g.Current())
	require.NotEqual(t, Finished, g.Phase())

	require.Equal(t, 6, g.Roll())
	require.NoError(t, g.Select(3))
	require.Equal(t, []Color{Blue, Green}, g.Snapshot().Ranking)
	require.Equal(t, Finished, g.Phase())

	// terminal: nothing is accepted anymore
	require.Equal(t, -1, g.Roll())
	require.ErrorIs(t, g.Select(0), ErrGameFinished)
}

func TestAdvanceSkipsRankedColors(t *testing.T) {
	g := newTestGame(t, 3, Blue, 2)
	g.positions[Red] = [TokensPerColor]int{56, 56, 56, 56}
	g.ranking = []Color{Red}
	g.positions[Blue][0] = 0

	g.Roll()
	require.NoError(t, g.Select(0))
	require.Equal(t, Green, g.Current(), "finished red must be skipped")
}

func TestResetRoundTrip(t *testing.T) {
	g := newTestGame(t, 4, Blue, 6, 6)
	g.Roll()
	require.NoError(t, g.Select(0))
	g.Roll()

	g.Reset()
	snap := g.Snapshot()
	require.Equal(t, AwaitingRoll, snap.Phase)
	require.Zero(t, snap.PendingRoll)
	require.Zero(t, snap.PreviousRoll)
	require.Empty(t, snap.Ranking)
	require.Empty(t, snap.LegalMoves)
	for c := range snap.Positions {
		for _, p := range snap.Positions[c] {
			require.Equal(t, YardPos, p)
		}
	}
}

// TestRandomDriveInvariants plays a long seeded sequence with the heuristic
// and checks the position domain and the immobility of finished tokens at
// every step.
func TestRandomDriveInvariants(t *testing.T) {
	g, err := New(4, WithRoller(dice.New(&dice.Config{Seed: 7})))
	require.NoError(t, err)

	finished := make(map[[2]int]bool)
	for step := 0; step < 20000 && g.Phase() != Finished; step++ {
		switch g.Phase() {
		case AwaitingRoll:
			v := g.Roll()
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, 6)
		case AwaitingSelection:
			tok := g.BestMove()
			require.GreaterOrEqual(t, tok, 0)
			require.NoError(t, g.Select(tok))
		}

		for c := range g.positions {
			for tkn, p := range g.positions[c] {
				require.GreaterOrEqual(t, p, YardPos)
				require.LessOrEqual(t, p, board.FinalIdx)
				key := [2]int{c, tkn}
				if finished[key] {
					require.Equal(t, board.FinalIdx, p, "finished token moved")
				}
				if p == board.FinalIdx {
					finished[key] = true
				}
			}
		}
	}

	// ranking is append-only and duplicate-free whatever happened above
	seen := make(map[Color]bool)
	for _, c := range g.Snapshot().Ranking {
		require.False(t, seen[c], "color ranked twice")
		seen[c] = true
	}
}
