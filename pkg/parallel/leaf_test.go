package parallel

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/mcts"
	"github.com/stretchr/testify/assert"
)

func newLeafEngine(size int, seed int64) *mcts.Engine {
	state := hex.NewGameState(size)
	rng := rand.New(rand.NewSource(seed))
	return mcts.NewRAVE(state, mcts.DefaultExploration, mcts.DefaultRaveConst, rng)
}

func TestLeafDriverPerRolloutBackup(t *testing.T) {
	driver := NewLeafDriver(newLeafEngine(3, 1), 4)
	driver.Search(context.Background(), 30*time.Millisecond)

	rollouts, nodeCount, _ := driver.Engine.Statistics()
	assert.Greater(t, rollouts, 0)
	assert.Greater(t, nodeCount, 1)
}

func TestLeafDriverAggregateBackup(t *testing.T) {
	driver := NewLeafDriver(newLeafEngine(3, 2), 4)
	driver.Aggregate = true
	driver.Search(context.Background(), 30*time.Millisecond)

	_, nodeCount, _ := driver.Engine.Statistics()
	assert.Greater(t, nodeCount, 1)
}

func TestLeafDriverSingleWorkerReturnsLegalMove(t *testing.T) {
	driver := NewLeafDriver(newLeafEngine(3, 3), 1)
	driver.Search(context.Background(), 20*time.Millisecond)

	move, ok := driver.Engine.BestMove()
	assert.True(t, ok)
	assert.Equal(t, hex.None, driver.Engine.RootState.Board.At(move))
}

func TestNewLeafDriverClampsWorkersBelowOne(t *testing.T) {
	driver := NewLeafDriver(newLeafEngine(3, 4), 0)
	assert.Equal(t, 1, driver.Workers)
}
