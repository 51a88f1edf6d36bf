package mcts

import (
	"fmt"
	"time"

	"github.com/Curtis-Barnhart/othello-ai/pkg/agent"
	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

// McstMemoryAgent binds an McstAgent to the agent.MemoryAgent contract: each
// Choose runs cycles until Limits is exhausted, decides, and remembers its
// own move so the next ObserveOpponent can re-root by both plies at once.
type McstMemoryAgent struct {
	selection SelectionPolicy
	expansion ExpansionPolicy
	decision  DecisionPolicy
	rollout   agent.Agent
	opponent  agent.Agent
	limits    Limits

	core        *McstAgent
	lastMove    othello.Move
	hasLastMove bool
}

// NewMcstMemoryAgent builds a McstMemoryAgent. Every StartGame builds a new
// McstAgent and search tree around these same policy and rollout/opponent
// values.
func NewMcstMemoryAgent(selection SelectionPolicy, expansion ExpansionPolicy, decision DecisionPolicy, rollout, opponent agent.Agent, limits Limits) *McstMemoryAgent {
	return &McstMemoryAgent{
		selection: selection,
		expansion: expansion,
		decision:  decision,
		rollout:   rollout,
		opponent:  opponent,
		limits:    limits,
	}
}

func (m *McstMemoryAgent) StartGame(state othello.Gamestate) {
	m.core = NewMcstAgent(m.selection, m.expansion, m.decision, m.rollout, m.opponent, state)
	m.hasLastMove = false
}

func (m *McstMemoryAgent) Choose() othello.Move {
	var deadline time.Time
	if m.limits.Budget > 0 {
		deadline = time.Now().Add(m.limits.Budget)
	}

	cycles := 0
	for {
		result, err := m.core.Cycle()
		if err != nil {
			panic(fmt.Sprintf("mcts: memory agent cycle failed: %v", err))
		}
		if result == SelectorStopped {
			break
		}
		cycles++
		if m.limits.MaxCycles > 0 && cycles >= m.limits.MaxCycles {
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
	}

	move, ok := m.core.Decide()
	if !ok {
		panic("mcts: memory agent decided on an illegal move")
	}
	m.lastMove = move
	m.hasLastMove = true
	return move
}

func (m *McstMemoryAgent) ObserveOpponent(move othello.Move) {
	if m.hasLastMove {
		if !m.core.AdvanceTwoMoves(m.lastMove, move) {
			panic("mcts: memory agent observed an illegal move pair")
		}
		m.hasLastMove = false
		return
	}
	if !m.core.AdvanceOneMove(move) {
		panic("mcts: memory agent observed an illegal opening move")
	}
}
