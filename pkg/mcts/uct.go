package mcts

import (
	"math"

	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

// DefaultExplorationConstant is the classic UCB1 sqrt(2).
func DefaultExplorationConstant() float64 {
	return math.Sqrt2
}

// UCTSelection descends through fully-expanded, non-terminal nodes by
// maximizing the UCB1 score at each step, alternating which side's win rate
// counts as exploitation by depth parity (even depths favor the root
// player, odd depths favor the opponent). It never signals done: cycling
// stops on a wall-clock or cycle budget, not on selector exhaustion.
type UCTSelection struct {
	C float64
}

// NewUCTSelection builds a UCTSelection with the given exploration
// constant.
func NewUCTSelection(c float64) *UCTSelection {
	return &UCTSelection{C: c}
}

func (u *UCTSelection) Select(tree *Tree) ([]othello.Move, bool) {
	path := make([]othello.Move, 0, 16)
	node := tree.Root()
	depth := 0
	for !node.Game.IsTerminal() {
		moves := node.Game.LegalMoves()
		if len(node.Children) < len(moves) {
			break
		}
		maximize := depth%2 == 0
		lnParent := math.Log(float64(node.Visits))

		var bestMove othello.Move
		bestScore := math.Inf(-1)
		first := true
		for move, child := range node.Children {
			exploitation := float64(child.Wins) / float64(child.Visits)
			if !maximize {
				exploitation = -exploitation
			}
			score := exploitation + u.C*math.Sqrt(lnParent/float64(child.Visits))
			if first || score > bestScore {
				bestScore = score
				bestMove = move
				first = false
			}
		}
		node = node.Children[bestMove]
		path = append(path, bestMove)
		depth++
	}
	return path, true
}

func (u *UCTSelection) OnAdvance(tree *Tree, moves []othello.Move) {}

// UCTDecision picks the root child with the most visits, the standard
// "robust child" choice.
type UCTDecision struct{}

func (UCTDecision) Decide(tree *Tree) othello.Move {
	var best othello.Move
	bestVisits := -1
	first := true
	for move, child := range tree.Root().Children {
		if first || child.Visits > bestVisits {
			bestVisits = child.Visits
			best = move
			first = false
		}
	}
	return best
}

// WinAverageDecision picks the root child with the highest win rate,
// treating an unvisited child as worse than any visited one.
type WinAverageDecision struct{}

func (WinAverageDecision) Decide(tree *Tree) othello.Move {
	var best othello.Move
	bestRate := math.Inf(-1)
	first := true
	for move, child := range tree.Root().Children {
		rate := math.Inf(-1)
		if child.Visits > 0 {
			rate = float64(child.Wins) / float64(child.Visits)
		}
		if first || rate > bestRate {
			bestRate = rate
			best = move
			first = false
		}
	}
	return best
}
