package mcts

import "github.com/Curtis-Barnhart/othello-ai/pkg/othello"

// BFSSelection enumerates the tree breadth-first and exhaustively: it holds
// a queue of paths to visit, re-inserting a not-yet-fully-expanded path at
// the front so the next cycle's expansion completes it, and fanning a
// fully-expanded path out into one queue entry per child. Select reports
// done once the queue drains, meaning every reachable position has been
// either expanded to exhaustion or reached a terminal.
type BFSSelection struct {
	queue [][]othello.Move
}

// NewBFSSelection starts a fresh queue containing only the root path.
func NewBFSSelection() *BFSSelection {
	return &BFSSelection{queue: [][]othello.Move{{}}}
}

func (b *BFSSelection) Select(tree *Tree) ([]othello.Move, bool) {
	for len(b.queue) > 0 {
		path := b.queue[0]
		b.queue = b.queue[1:]

		node := tree.Root().Find(path)
		if node == nil {
			continue
		}
		if node.Game.IsTerminal() {
			continue
		}
		moves := node.Game.LegalMoves()
		if len(node.Children) < len(moves) {
			b.queue = append([][]othello.Move{path}, b.queue...)
			return path, true
		}
		for move := range node.Children {
			childPath := make([]othello.Move, len(path), len(path)+1)
			copy(childPath, path)
			childPath = append(childPath, move)
			b.queue = append(b.queue, childPath)
		}
	}
	return nil, false
}

func (b *BFSSelection) OnAdvance(tree *Tree, moves []othello.Move) {
	b.queue = [][]othello.Move{{}}
}

// BFSExpansion returns the first not-yet-expanded legal move at the node
// reached by path, in board-scan order.
type BFSExpansion struct{}

func (BFSExpansion) Expand(tree *Tree, path []othello.Move) othello.Move {
	node := tree.Root().Find(path)
	for _, m := range node.Game.LegalMoves() {
		if _, ok := node.Children[m]; !ok {
			return m
		}
	}
	panic("mcts: BFSExpansion.Expand called on a fully-expanded node")
}
