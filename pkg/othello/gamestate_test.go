package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGamestateSideToMove(t *testing.T) {
	g := NewGamestate()
	require.Equal(t, Black, g.SideToMove())
	require.Equal(t, 0, g.T())
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	g := NewGamestate()
	require.False(t, g.Apply(Coord(0, 0)))
	require.Equal(t, 0, g.T())
}

func TestApplyAdvancesTurn(t *testing.T) {
	g := NewGamestate()
	require.True(t, g.Apply(Coord(2, 3)))
	require.Equal(t, 1, g.T())
	require.Equal(t, White, g.SideToMove())
}

func TestLegalMovesCachedUntilApply(t *testing.T) {
	g := NewGamestate()
	first := g.LegalMoves()
	second := g.LegalMoves()
	require.Equal(t, first, second)

	g.Apply(first[0])
	third := g.LegalMoves()
	require.NotEqual(t, first, third)
}

func TestPassIsOnlyLegalMoveWhenNoCoordinateMove(t *testing.T) {
	// White at (0,0), Black at (1,0), empty at (2,0), rest of the board
	// empty. Black's only candidate placement near this run is (2,0), but
	// that direction starts on Black's own color (degenerate, no flip) and
	// every other direction from (2,0) is empty; Black has no legal move
	// anywhere on the board. White at (2,0) flips the Black disc at (1,0)
	// against the White disc at (0,0), so White does have a move.
	var b Board
	b.cells[0][0] = Taken(White)
	b.cells[0][1] = Taken(Black)
	g := NewGamestateFrom(b, 0)
	moves := g.LegalMoves()
	require.Len(t, moves, 1)
	require.True(t, moves[0].IsPass())
}

func TestApplySequenceStopsOnIllegalMove(t *testing.T) {
	g := NewGamestate()
	legal := g.LegalMoves()[0]
	ok := g.ApplySequence([]Move{legal, Coord(0, 0)})
	require.False(t, ok)
	require.Equal(t, 1, g.T())
}

func TestGamestateEqual(t *testing.T) {
	a := NewGamestate()
	b := NewGamestate()
	require.True(t, a.Equal(b))
	a.Apply(a.LegalMoves()[0])
	require.False(t, a.Equal(b))
}

func TestIsTerminalFalseAtStart(t *testing.T) {
	g := NewGamestate()
	require.False(t, g.IsTerminal())
}
