package mcts

import "github.com/Curtis-Barnhart/othello-ai/pkg/othello"

// SelectionPolicy walks down an existing tree from the root and returns the
// path to the node where the next cycle should continue — the first node
// that is terminal or is not yet fully expanded. The second return value is
// false when the policy has nothing left to select (BFS exhaustion); the
// caller then stops cycling.
type SelectionPolicy interface {
	Select(tree *Tree) ([]othello.Move, bool)

	// OnAdvance is called after the tree is re-rooted by some number of
	// moves, so a policy holding its own cursor state (like BFS's queue)
	// can reset it relative to the new root.
	OnAdvance(tree *Tree, moves []othello.Move)
}

// ExpansionPolicy picks one of the as-yet-unexpanded legal moves at the node
// reached by path. It is only called when that node is non-terminal and not
// fully expanded.
type ExpansionPolicy interface {
	Expand(tree *Tree, path []othello.Move) othello.Move
}

// DecisionPolicy picks the move to actually play at the tree's root, once
// cycling is done.
type DecisionPolicy interface {
	Decide(tree *Tree) othello.Move
}
