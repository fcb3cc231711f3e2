package parallel

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/mcts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformPolicy(rng *rand.Rand) mcts.RolloutPolicy {
	return mcts.UniformRollout{}
}

func TestRootDriverSearchMergesVisits(t *testing.T) {
	state := hex.NewGameState(3)
	rng := rand.New(rand.NewSource(1))
	driver := NewRootDriver(state, mcts.DefaultExploration, mcts.DefaultRaveConst, uniformPolicy, 3, rng)

	driver.Search(context.Background(), 30*time.Millisecond)

	move, ok := driver.BestMove()
	require.True(t, ok)
	assert.Equal(t, hex.None, state.Board.At(move))

	rollouts, nodeCount, _ := driver.Statistics()
	assert.Greater(t, rollouts, 0)
	assert.Greater(t, nodeCount, 0)
}

func TestRootDriverMoveRebasesEveryEngine(t *testing.T) {
	state := hex.NewGameState(3)
	rng := rand.New(rand.NewSource(2))
	driver := NewRootDriver(state, mcts.DefaultExploration, mcts.DefaultRaveConst, uniformPolicy, 2, rng)

	require.NoError(t, driver.Move(hex.Cell{1, 1}))
	for _, e := range driver.Engines {
		assert.Equal(t, hex.Blue, e.RootState.ToPlay)
	}
}

func TestRootDriverBestMoveFalseWhenNoLegalMoves(t *testing.T) {
	state := hex.NewGameState(3)
	for _, mv := range []hex.Cell{{0, 0}, {0, 1}, {1, 0}, {0, 2}, {2, 0}} {
		require.NoError(t, state.SetTurn(hex.Red))
		require.NoError(t, state.Play(mv))
	}
	rng := rand.New(rand.NewSource(3))
	driver := NewRootDriver(state, mcts.DefaultExploration, mcts.DefaultRaveConst, uniformPolicy, 2, rng)

	driver.Search(context.Background(), 10*time.Millisecond)
	_, ok := driver.BestMove()
	assert.False(t, ok)
}

func TestRootDriverSetGameStateResetsAllEngines(t *testing.T) {
	state := hex.NewGameState(3)
	rng := rand.New(rand.NewSource(4))
	driver := NewRootDriver(state, mcts.DefaultExploration, mcts.DefaultRaveConst, uniformPolicy, 2, rng)
	driver.Search(context.Background(), 20*time.Millisecond)

	fresh := hex.NewGameState(3)
	driver.SetGameState(fresh)

	for _, e := range driver.Engines {
		assert.Empty(t, e.Root.Children)
	}
}
