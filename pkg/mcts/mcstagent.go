package mcts

import (
	"github.com/Curtis-Barnhart/othello-ai/pkg/agent"
	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

// CycleResult reports what a single Cycle call did.
type CycleResult int

const (
	// Progressed means one selection/expansion/rollout/back-propagation
	// pass completed normally.
	Progressed CycleResult = iota
	// SelectorStopped means the selection policy had nothing left to
	// select (only possible with an exhaustive policy like BFS).
	SelectorStopped
)

// McstAgent owns one search tree and runs the select/expand/rollout/
// back-propagate cycle against it. It is not itself a MemoryAgent; see
// McstMemoryAgent for that binding.
type McstAgent struct {
	selection SelectionPolicy
	expansion ExpansionPolicy
	decision  DecisionPolicy
	rollout   agent.Agent
	opponent  agent.Agent
	tree      *Tree
}

// NewMcstAgent builds an McstAgent rooted at game. A nil rollout or opponent
// defaults to a uniform RandomAgent, matching the engine's own default
// per-ply policy.
func NewMcstAgent(selection SelectionPolicy, expansion ExpansionPolicy, decision DecisionPolicy, rollout, opponent agent.Agent, game othello.Gamestate) *McstAgent {
	if rollout == nil {
		rollout = agent.NewRandomAgent(nil)
	}
	if opponent == nil {
		opponent = agent.NewRandomAgent(nil)
	}
	return &McstAgent{
		selection: selection,
		expansion: expansion,
		decision:  decision,
		rollout:   rollout,
		opponent:  opponent,
		tree:      NewTree(game),
	}
}

// Tree exposes the underlying search tree, mainly for tests and inspection.
func (a *McstAgent) Tree() *Tree {
	return a.tree
}

// Cycle runs one selection/expansion/rollout/back-propagation pass.
func (a *McstAgent) Cycle() (CycleResult, error) {
	path, ok := a.selection.Select(a.tree)
	if !ok {
		return SelectorStopped, nil
	}
	node := a.tree.root.Find(path)
	if node == nil {
		return 0, &CycleError{Kind: SelectionError, Path: path}
	}

	if !node.Game.IsTerminal() {
		move := a.expansion.Expand(a.tree, path)
		legal := false
		for _, m := range node.Game.LegalMoves() {
			if m == move {
				legal = true
				break
			}
		}
		if !legal {
			return 0, &CycleError{Kind: ExpansionError, Path: path, Move: move}
		}
		if _, already := node.Children[move]; already {
			return 0, &CycleError{Kind: ExpansionError, Path: path, Move: move}
		}
		if _, err := a.tree.AttachChild(path, move); err != nil {
			return 0, &CycleError{Kind: ExpansionError, Path: path, Move: move}
		}
		extended := make([]othello.Move, len(path), len(path)+1)
		copy(extended, path)
		path = append(extended, move)
		node = a.tree.root.Find(path)
	}

	rootMover := a.tree.root.Game.SideToMove()
	win, history, err := a.rolloutFrom(node.Game, rootMover)
	if err != nil {
		return 0, &CycleError{Kind: RolloutError, History: history}
	}

	for i := 0; i <= len(path); i++ {
		a.tree.root.Find(path[:i]).RecordRollout(win)
	}

	return Progressed, nil
}

// rolloutFrom plays out game to a terminal position, alternating between
// the rollout agent (when it is rootMover's turn) and the opponent agent,
// and reports whether the result favors rootMover.
func (a *McstAgent) rolloutFrom(game othello.Gamestate, rootMover othello.Side) (bool, []othello.Move, error) {
	history := make([]othello.Move, 0, othello.Size*othello.Size)
	for !game.IsTerminal() {
		mover := a.opponent
		if game.SideToMove() == rootMover {
			mover = a.rollout
		}
		move := mover.Choose(game)
		if !game.Apply(move) {
			history = append(history, move)
			return false, history, &CycleError{Kind: RolloutError, History: history}
		}
		history = append(history, move)
	}
	score := game.Score()
	win := score > 0
	if rootMover == othello.White {
		win = score < 0
	}
	return win, history, nil
}

// Decide asks the decision policy for a move to play at the root, and
// reports whether that move is actually legal there. A false result means
// no cycles have produced a usable tree yet.
func (a *McstAgent) Decide() (othello.Move, bool) {
	move := a.decision.Decide(a.tree)
	for _, m := range a.tree.root.Game.LegalMoves() {
		if m == move {
			return move, true
		}
	}
	return othello.Move{}, false
}

// AdvanceTwoMoves re-roots the tree two plies forward by m1 then m2,
// attaching either as a fresh child if the tree had not already explored
// it, and discards every sibling subtree along the way. It reports whether
// both moves were legal in sequence from the current root.
func (a *McstAgent) AdvanceTwoMoves(m1, m2 othello.Move) bool {
	test := a.tree.root.Game
	if !test.Apply(m1) || !test.Apply(m2) {
		return false
	}

	mid, ok := a.tree.root.Children[m1]
	if !ok {
		var err error
		mid, err = a.tree.AttachChild(nil, m1)
		if err != nil {
			return false
		}
	}
	next, ok := mid.Children[m2]
	if !ok {
		var err error
		next, err = a.tree.AttachChild([]othello.Move{m1}, m2)
		if err != nil {
			return false
		}
	}

	a.tree.root = next
	a.selection.OnAdvance(a.tree, []othello.Move{m1, m2})
	return true
}

// AdvanceOneMove re-roots the tree a single ply forward by m, for the
// bootstrap case where a McstMemoryAgent observes the other side's opening
// move before ever having chosen one of its own.
func (a *McstAgent) AdvanceOneMove(m othello.Move) bool {
	test := a.tree.root.Game
	if !test.Apply(m) {
		return false
	}

	child, ok := a.tree.root.Children[m]
	if !ok {
		var err error
		child, err = a.tree.AttachChild(nil, m)
		if err != nil {
			return false
		}
	}

	a.tree.root = child
	a.selection.OnAdvance(a.tree, []othello.Move{m})
	return true
}
