package mcts

import (
	"fmt"

	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

// Tree owns the root of a search tree and every node reachable from it.
type Tree struct {
	root *Node
}

// NewTree starts a fresh single-node tree rooted at game.
func NewTree(game othello.Gamestate) *Tree {
	return &Tree{root: newNode(game)}
}

// Root returns the current root node.
func (t *Tree) Root() *Node {
	return t.root
}

// AttachChild expands the node at path with a new child for move. It fails
// if path does not resolve, move is already a child, or move is not legal
// in that node's position.
func (t *Tree) AttachChild(path []othello.Move, move othello.Move) (*Node, error) {
	node := t.root.Find(path)
	if node == nil {
		return nil, fmt.Errorf("mcts: path %v does not resolve to a node", path)
	}
	if _, ok := node.Children[move]; ok {
		return nil, fmt.Errorf("mcts: move %v is already a child at %v", move, path)
	}
	legal := false
	for _, m := range node.Game.LegalMoves() {
		if m == move {
			legal = true
			break
		}
	}
	if !legal {
		return nil, fmt.Errorf("mcts: move %v is not legal at %v", move, path)
	}
	child := node.Game
	if !child.Apply(move) {
		return nil, fmt.Errorf("mcts: move %v failed to apply at %v", move, path)
	}
	newChild := newNode(child)
	node.Children[move] = newChild
	return newChild, nil
}
