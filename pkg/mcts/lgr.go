package mcts

import (
	"math/rand"

	"github.com/hexmcts/engine/pkg/hex"
)

// DefaultLGRRandomness is the default probability of deviating from a
// recorded reply during an LGR rollout.
const DefaultLGRRandomness = 0.5

// LGRRollout is the Last-Good-Reply rollout policy: identical to
// UniformRollout except that each side consults a per-color cell->cell
// reply table built from the winning side of earlier rollouts, and
// mixes it with uniform-random choice.
//
// The reply tables are process-owned state that survives across
// Engine.Search calls and is only cleared by SetGameState — they must
// not be shared between engines running concurrently; use one
// LGRRollout per goroutine.
type LGRRollout struct {
	BlueReply  map[hex.Cell]hex.Cell
	RedReply   map[hex.Cell]hex.Cell
	Randomness float64
}

// NewLGRRollout returns an LGR rollout policy with empty reply tables.
func NewLGRRollout(randomness float64) *LGRRollout {
	return &LGRRollout{
		BlueReply:  make(map[hex.Cell]hex.Cell),
		RedReply:   make(map[hex.Cell]hex.Cell),
		Randomness: randomness,
	}
}

// Reset clears both reply tables, called by Engine.SetGameState.
func (l *LGRRollout) Reset() {
	l.BlueReply = make(map[hex.Cell]hex.Cell)
	l.RedReply = make(map[hex.Cell]hex.Cell)
}

func (l *LGRRollout) Rollout(state *hex.GameState, rng *rand.Rand) RolloutResult {
	moves := state.Moves()
	first := state.ToPlay

	currentReply, otherReply := l.RedReply, l.BlueReply
	if first == hex.Blue {
		currentReply, otherReply = l.BlueReply, l.RedReply
	}

	var blueMoves, redMoves []hex.Cell
	var lastMove hex.Cell
	haveLast := false

	for state.Winner() == hex.None {
		move, usedReply := hex.Cell{}, false
		if haveLast {
			if reply, ok := currentReply[lastMove]; ok && containsCell(moves, reply) {
				if rng.Float64() > l.Randomness {
					move, usedReply = reply, true
				}
			}
		}
		if !usedReply {
			move = moves[rng.Intn(len(moves))]
		}

		if state.ToPlay == hex.Blue {
			blueMoves = append(blueMoves, move)
		} else {
			redMoves = append(redMoves, move)
		}

		currentReply, otherReply = otherReply, currentReply
		if err := state.Play(move); err != nil {
			panic(err)
		}
		moves = removeCell(moves, move)
		lastMove, haveLast = move, true
	}

	result := collectRavePts(state)
	l.recordReplies(result.Winner, first, state.ToPlay, blueMoves, redMoves)
	return result
}

// recordReplies updates the winning color's reply table: for each
// opposing-color move at index i, winner.reply[opponent_move_i] =
// winner_move_{i+offset}. offset accounts for which color moved first
// in the rollout; skip drops a trailing move with no recorded answer.
func (l *LGRRollout) recordReplies(winner, first, lastToPlay hex.Player, blueMoves, redMoves []hex.Cell) {
	offset, skip := 0, 0

	if winner == hex.Blue {
		if first == hex.Blue {
			offset = 1
		}
		if lastToPlay == hex.Blue {
			skip = 1
		}
		for i := 0; i < len(redMoves)-skip; i++ {
			l.BlueReply[redMoves[i]] = blueMoves[i+offset]
		}
		return
	}

	if first == hex.Red {
		offset = 1
	}
	if lastToPlay == hex.Red {
		skip = 1
	}
	for i := 0; i < len(blueMoves)-skip; i++ {
		l.RedReply[blueMoves[i]] = redMoves[i+offset]
	}
}

func containsCell(cells []hex.Cell, target hex.Cell) bool {
	for _, c := range cells {
		if c == target {
			return true
		}
	}
	return false
}
