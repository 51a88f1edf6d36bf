// Package mcts implements a single-threaded Monte Carlo tree search over
// pluggable selection/expansion/decision policies, driving an
// othello.Gamestate.
package mcts

import "github.com/Curtis-Barnhart/othello-ai/pkg/othello"

// Node is one position in the search tree: the game at that position, its
// expanded children keyed by move, and its accumulated rollout statistics.
type Node struct {
	Game     othello.Gamestate
	Children map[othello.Move]*Node
	Visits   int
	Wins     int
}

func newNode(game othello.Gamestate) *Node {
	return &Node{Game: game, Children: make(map[othello.Move]*Node)}
}

// RecordRollout folds one rollout outcome into this node's statistics.
func (n *Node) RecordRollout(win bool) {
	n.Visits++
	if win {
		n.Wins++
	}
}

// Find descends child links along path and returns the reached node, or nil
// if any link along the way is missing.
func (n *Node) Find(path []othello.Move) *Node {
	node := n
	for _, m := range path {
		child, ok := node.Children[m]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Size counts this node and every descendant.
func (n *Node) Size() int {
	count := 1
	for _, c := range n.Children {
		count += c.Size()
	}
	return count
}
