// Package driver runs complete games between two agent.MemoryAgents and
// summarizes the outcome.
package driver

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/Curtis-Barnhart/othello-ai/pkg/agent"
	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

// Result is the outcome of one game.
type Result struct {
	Score   int
	History []othello.Move
}

// Play starts both agents on initial, then alternates Choose/ObserveOpponent
// calls until the position is terminal. An illegal move from either agent is
// a fatal invariant violation and panics; the driver's own Gamestate is the
// single source of truth for legality.
func Play(black, white agent.MemoryAgent, initial othello.Gamestate) Result {
	black.StartGame(initial)
	white.StartGame(initial)

	game := initial
	history := make([]othello.Move, 0, othello.Size*othello.Size)

	for !game.IsTerminal() {
		mover, other := black, white
		if game.SideToMove() == othello.White {
			mover, other = white, black
		}

		move := mover.Choose()
		if !game.Apply(move) {
			panic(fmt.Sprintf("driver: %v made an illegal move %v", game.SideToMove(), move))
		}
		other.ObserveOpponent(move)
		history = append(history, move)
	}

	return Result{Score: game.Score(), History: history}
}

// BenchmarkResult summarizes a batch of games from Black's perspective: a
// win counts 1, a draw counts 0.5, a loss counts 0.
type BenchmarkResult struct {
	WinFraction float64
	Games       int
}

// Benchmark plays n independent games, constructing fresh agents for each
// from newBlack/newWhite. A panic inside any single game (typically a
// CycleError surfaced by an mcts-backed MemoryAgent) is recovered and
// accumulated into the returned error instead of aborting the whole batch;
// that game is excluded from both Games and WinFraction.
func Benchmark(newBlack, newWhite func() agent.MemoryAgent, initial othello.Gamestate, n int) (BenchmarkResult, error) {
	var wins float64
	var errs *multierror.Error
	completed := 0

	for i := 0; i < n; i++ {
		func() {
			defer func() {
				if r := recover(); r != nil {
					errs = multierror.Append(errs, fmt.Errorf("game %d: %v", i, r))
				}
			}()

			result := Play(newBlack(), newWhite(), initial)
			completed++
			switch {
			case result.Score > 0:
				wins++
			case result.Score == 0:
				wins += 0.5
			}
		}()
	}

	var fraction float64
	if completed > 0 {
		fraction = wins / float64(completed)
	}
	return BenchmarkResult{WinFraction: fraction, Games: completed}, errs.ErrorOrNil()
}
