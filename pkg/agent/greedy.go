package agent

import "github.com/Curtis-Barnhart/othello-ai/pkg/othello"

// GreedyAgent picks the legal move that flips the most opponent discs,
// breaking ties by move order.
type GreedyAgent struct{}

func (GreedyAgent) Choose(state othello.Gamestate) othello.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("agent: GreedyAgent.Choose called with no legal moves")
	}
	best := moves[0]
	bestFlips := -1
	for _, m := range moves {
		clone := state
		flipped, _ := clone.ApplyDetailed(m)
		if len(flipped) > bestFlips {
			bestFlips = len(flipped)
			best = m
		}
	}
	return best
}
