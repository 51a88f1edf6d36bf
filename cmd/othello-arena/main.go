/*

othello-arena runs one demonstration game between a UCT-driven MCTS agent
(Black) and a BFS-driven MCTS agent (White), rendering the board with
terminal color after each move.

*/
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/muesli/termenv"

	"github.com/Curtis-Barnhart/othello-ai/pkg/agent"
	"github.com/Curtis-Barnhart/othello-ai/pkg/driver"
	"github.com/Curtis-Barnhart/othello-ai/pkg/mcts"
	"github.com/Curtis-Barnhart/othello-ai/pkg/othello"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	output := termenv.NewOutput(os.Stdout)

	limits := mcts.DefaultLimits().SetBudget(500 * time.Millisecond)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rollout := agent.NewRandomAgent(rng)

	black := mcts.NewMcstMemoryAgent(
		mcts.NewUCTSelection(mcts.DefaultExplorationConstant()),
		mcts.BFSExpansion{},
		mcts.UCTDecision{},
		rollout, rollout, limits,
	)
	white := mcts.NewMcstMemoryAgent(
		mcts.NewBFSSelection(),
		mcts.BFSExpansion{},
		mcts.WinAverageDecision{},
		rollout, rollout, limits,
	)

	logger.Info("starting game", "black", "uct", "white", "bfs", "budget", limits.Budget)

	initial := othello.NewGamestate()
	result := driver.Play(black, white, initial)

	game := initial
	renderBoard(output, game.Board())
	for _, move := range result.History {
		side := game.SideToMove()
		game.Apply(move)
		logger.Info("move played", "side", side.String(), "move", move.String(), "t", game.T())
		renderBoard(output, game.Board())
	}

	logger.Info("game over", "score", result.Score)
	fmt.Println(summarize(result.Score))
}

func renderBoard(output *termenv.Output, board othello.Board) {
	for y := 0; y < othello.Size; y++ {
		for x := 0; x < othello.Size; x++ {
			cell, _ := board.At(x, y)
			fmt.Print(styleCell(output, cell))
		}
		fmt.Println()
	}
	fmt.Println()
}

func styleCell(output *termenv.Output, cell othello.CellState) string {
	if cell.IsEmpty() {
		return output.String(".").Faint().String()
	}
	side, _ := cell.Side()
	if side == othello.Black {
		return output.String("B").Bold().String()
	}
	return output.String("W").Foreground(output.Color("11")).String()
}

func summarize(score int) string {
	switch {
	case score > 0:
		return fmt.Sprintf("Black wins by %d", score)
	case score < 0:
		return fmt.Sprintf("White wins by %d", -score)
	default:
		return "draw"
	}
}
