package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

func TestRandomAgentChoosesLegalMove(t *testing.T) {
	a := NewRandomAgent(rand.New(rand.NewSource(42)))
	g := othello.NewGamestate()
	move := a.Choose(g)
	found := false
	for _, m := range g.LegalMoves() {
		if m == move {
			found = true
		}
	}
	require.True(t, found)
}

func TestGreedyAgentMaximizesFlips(t *testing.T) {
	a := GreedyAgent{}
	g := othello.NewGamestate()
	move := a.Choose(g)

	best := -1
	for _, m := range g.LegalMoves() {
		clone := g
		flipped, _ := clone.ApplyDetailed(m)
		if len(flipped) > best {
			best = len(flipped)
		}
	}
	clone := g
	flipped, _ := clone.ApplyDetailed(move)
	require.Equal(t, best, len(flipped))
}

func TestRankedCellAgentPrefersHighestWeight(t *testing.T) {
	var ranking [othello.Size][othello.Size]float64
	g := othello.NewGamestate()
	moves := g.LegalMoves()
	ranking[moves[1].Y][moves[1].X] = 100
	a := NewRankedCellAgent(ranking)
	require.Equal(t, moves[1], a.Choose(g))
}

func TestMemoryAdapterTracksBothSides(t *testing.T) {
	a := NewMemoryAdapter(GreedyAgent{})
	g := othello.NewGamestate()
	a.StartGame(g)

	move := a.Choose()
	g.Apply(move)
	require.Equal(t, g.Board(), a.state.Board())

	opp := g.LegalMoves()[0]
	g.Apply(opp)
	a.ObserveOpponent(opp)
	require.True(t, g.Equal(a.state))
}
