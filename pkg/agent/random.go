package agent

import (
	"math/rand"
	"time"

	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

// RandomAgent picks uniformly among the legal moves. It is also the MCTS
// engine's default rollout and opponent agent.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a RandomAgent backed by rng, or by a
// time-seeded generator if rng is nil.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) Choose(state othello.Gamestate) othello.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("agent: RandomAgent.Choose called with no legal moves")
	}
	return moves[a.rng.Intn(len(moves))]
}
