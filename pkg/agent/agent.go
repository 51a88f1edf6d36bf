// Package agent defines the move-choosing contracts that drive an
// othello.Gamestate, and ships a handful of simple, non-interactive
// implementations.
package agent

import "github.com/Curtis-Barnhart/othello-ai/pkg/othello"

// Agent chooses a move for the position's side to move. Choose must not
// mutate state, and its precondition is that state has at least one legal
// move; callers that violate it get a panic, not a silent Pass.
type Agent interface {
	Choose(state othello.Gamestate) othello.Move
}

// MemoryAgent tracks its own running Gamestate across a game instead of
// being handed the position on every call: StartGame seeds the position,
// ObserveOpponent reports the other side's move, and Choose both decides and
// records its own move.
type MemoryAgent interface {
	StartGame(state othello.Gamestate)
	ObserveOpponent(move othello.Move)
	Choose() othello.Move
}

// MemoryAdapter turns any stateless Agent into a MemoryAgent by keeping a
// local Gamestate in sync with both sides' moves.
type MemoryAdapter struct {
	inner Agent
	state othello.Gamestate
}

// NewMemoryAdapter wraps agent as a MemoryAgent.
func NewMemoryAdapter(agent Agent) *MemoryAdapter {
	return &MemoryAdapter{inner: agent}
}

func (a *MemoryAdapter) StartGame(state othello.Gamestate) {
	a.state = state
}

func (a *MemoryAdapter) ObserveOpponent(move othello.Move) {
	if !a.state.Apply(move) {
		panic("agent: observed an illegal opponent move")
	}
}

func (a *MemoryAdapter) Choose() othello.Move {
	move := a.inner.Choose(a.state)
	if !a.state.Apply(move) {
		panic("agent: inner agent chose an illegal move")
	}
	return move
}
