package agent

import "github.com/Curtis-Barnhart/othello-ai/pkg/othello"

// RankedCellAgent picks the legal coordinate move with the highest score in
// a caller-supplied weight table (ranking[y][x]), falling back to Pass when
// that is the only legal move.
type RankedCellAgent struct {
	ranking [othello.Size][othello.Size]float64
}

// NewRankedCellAgent builds a RankedCellAgent from a per-cell weight table.
func NewRankedCellAgent(ranking [othello.Size][othello.Size]float64) *RankedCellAgent {
	return &RankedCellAgent{ranking: ranking}
}

func (a *RankedCellAgent) Choose(state othello.Gamestate) othello.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("agent: RankedCellAgent.Choose called with no legal moves")
	}
	if len(moves) == 1 && moves[0].IsPass() {
		return moves[0]
	}
	best := moves[0]
	bestScore := 0.0
	first := true
	for _, m := range moves {
		if m.IsPass() {
			continue
		}
		score := a.ranking[m.Y][m.X]
		if first || score > bestScore {
			bestScore = score
			best = m
			first = false
		}
	}
	return best
}
