package mcts

import (
	"fmt"

	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

// CycleErrorKind tags which phase of a cycle failed.
type CycleErrorKind int

const (
	SelectionError CycleErrorKind = iota
	ExpansionError
	RolloutError
)

func (k CycleErrorKind) String() string {
	switch k {
	case SelectionError:
		return "Selection"
	case ExpansionError:
		return "Expansion"
	case RolloutError:
		return "Rollout"
	default:
		return "Unknown"
	}
}

// CycleError reports that one phase of McstAgent.Cycle hit an invariant
// violation — a buggy policy or rollout agent, not an expected runtime
// condition.
type CycleError struct {
	Kind    CycleErrorKind
	Path    []othello.Move
	Move    othello.Move
	History []othello.Move
}

func (e *CycleError) Error() string {
	switch e.Kind {
	case SelectionError:
		return fmt.Sprintf("mcts: %v error: selection policy returned an unresolvable path %v", e.Kind, e.Path)
	case ExpansionError:
		return fmt.Sprintf("mcts: %v error: expansion policy returned illegal or duplicate move %v at %v", e.Kind, e.Move, e.Path)
	case RolloutError:
		return fmt.Sprintf("mcts: %v error: rollout agent made an illegal move, history %v", e.Kind, e.History)
	default:
		return "mcts: cycle error"
	}
}
