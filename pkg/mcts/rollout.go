package mcts

import (
	"math/rand"

	"github.com/hexmcts/engine/pkg/hex"
)

// RolloutResult is the outcome of a single simulated game to terminal,
// plus the AMAF point sets used to update RAVE statistics on backup:
// every cell occupied by each color at the terminal state, which
// includes both the moves played during tree selection/expansion and
// the moves played during the random rollout itself.
type RolloutResult struct {
	Winner      hex.Player
	BlueRavePts []hex.Cell
	RedRavePts  []hex.Cell
}

// RolloutPolicy plays a position out to a terminal state and returns
// the result. It mutates state in place; callers must pass a clone they
// don't need afterwards.
type RolloutPolicy interface {
	Rollout(state *hex.GameState, rng *rand.Rand) RolloutResult
}

// collectRavePts scans the terminal board for every Red/Blue stone,
// used by every RolloutPolicy to build the RolloutResult.
func collectRavePts(state *hex.GameState) RolloutResult {
	result := RolloutResult{Winner: state.Winner()}
	size := state.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cell := hex.Cell{Row: row, Col: col}
			switch state.Board.At(cell) {
			case hex.Red:
				result.RedRavePts = append(result.RedRavePts, cell)
			case hex.Blue:
				result.BlueRavePts = append(result.BlueRavePts, cell)
			}
		}
	}
	return result
}

// removeCell returns moves with cell removed, preserving the order of
// the rest (a linear scan, same cost shape as the original's
// list.remove).
func removeCell(moves []hex.Cell, cell hex.Cell) []hex.Cell {
	for i, m := range moves {
		if m == cell {
			return append(moves[:i], moves[i+1:]...)
		}
	}
	return moves
}

// UniformRollout plays uniformly random legal moves until the game
// ends. Hex cannot draw, so this always terminates with a non-None
// winner in at most size² plays.
type UniformRollout struct{}

func (UniformRollout) Rollout(state *hex.GameState, rng *rand.Rand) RolloutResult {
	moves := state.Moves()
	for state.Winner() == hex.None {
		move := moves[rng.Intn(len(moves))]
		if err := state.Play(move); err != nil {
			panic(err) // moves() only returns currently-legal cells
		}
		moves = removeCell(moves, move)
	}
	return collectRavePts(state)
}
