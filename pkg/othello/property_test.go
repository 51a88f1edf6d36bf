package othello

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// allMoves enumerates every representable move: every board coordinate plus
// Pass, for property tests that need to probe moves outside the legal set.
func allMoves() []Move {
	moves := make([]Move, 0, Size*Size+1)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			moves = append(moves, Coord(x, y))
		}
	}
	return append(moves, Pass)
}

// playRandomGame drives a fresh game with rng picking uniformly among legal
// moves at each ply, invoking check before every Apply (so check sees the
// pre-move position, including the terminal one at the end).
func playRandomGame(t *testing.T, rng *rand.Rand, check func(g Gamestate)) {
	t.Helper()
	g := NewGamestate()
	for ply := 0; ply < Size*Size*2 && !g.IsTerminal(); ply++ {
		check(g)
		moves := g.LegalMoves()
		move := moves[rng.Intn(len(moves))]
		require.True(t, g.Apply(move))
	}
	check(g)
}

// TestPropertyMoveLegalitySymmetry checks spec property 1 across many
// randomized games: a move is in LegalMoves() iff applying it to a clone of
// the position succeeds.
func TestPropertyMoveLegalitySymmetry(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		playRandomGame(t, rng, func(g Gamestate) {
			legal := make(map[Move]bool, len(g.LegalMoves()))
			for _, m := range g.LegalMoves() {
				legal[m] = true
			}
			for _, m := range allMoves() {
				clone := g
				ok := clone.Apply(m)
				require.Equal(t, legal[m], ok, "seed %d: move %v legality mismatch", seed, m)
			}
		})
	}
}

// TestPropertyFlipDeterminism checks spec property 2: applying the same
// legal move to two independent copies of a position always produces the
// same resulting board.
func TestPropertyFlipDeterminism(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		playRandomGame(t, rng, func(g Gamestate) {
			for _, m := range g.LegalMoves() {
				c1, c2 := g, g
				require.True(t, c1.Apply(m))
				require.True(t, c2.Apply(m))
				require.Equal(t, c1.Board(), c2.Board())
			}
		})
	}
}

// TestPropertyScoreBounds checks spec property 5: the score's magnitude
// never exceeds the number of discs on the board, which never exceeds 64.
func TestPropertyScoreBounds(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		playRandomGame(t, rng, func(g Gamestate) {
			stones := 0
			for y := 0; y < Size; y++ {
				for x := 0; x < Size; x++ {
					cell, _ := g.Board().At(x, y)
					if !cell.IsEmpty() {
						stones++
					}
				}
			}
			require.LessOrEqual(t, stones, Size*Size)
			score := g.Score()
			if score < 0 {
				score = -score
			}
			require.LessOrEqual(t, score, stones)
		})
	}
}

// TestPropertyCompactRoundTrip checks spec property 6 against every board
// reachable along many randomized games, not just the two fixed positions
// TestBoardCodecRoundTripsStartingPosition/...AfterPlay exercise.
func TestPropertyCompactRoundTrip(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		playRandomGame(t, rng, func(g Gamestate) {
			encoded := EncodeBoard(g.Board())
			decoded, err := DecodeBoard(encoded)
			require.NoError(t, err)
			require.Equal(t, g.Board(), decoded)
		})
	}
}
