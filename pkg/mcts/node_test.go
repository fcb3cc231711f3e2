package mcts

import (
	"math"
	"testing"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/stretchr/testify/assert"
)

func TestNodeValueUnvisitedIsInfinite(t *testing.T) {
	n := newChild(newRoot(), hex.Cell{0, 0})
	assert.True(t, math.IsInf(n.Value(10, 0.5, 300), 1))
}

func TestNodeValueUnvisitedWithZeroExploreIsZero(t *testing.T) {
	n := newChild(newRoot(), hex.Cell{0, 0})
	assert.Equal(t, 0.0, n.Value(10, 0, 300))
}

func TestNodeValueBlendsUCTAndRAVE(t *testing.T) {
	n := newChild(newRoot(), hex.Cell{0, 0})
	n.Visits = 10
	n.RewardSum = 5
	n.RaveVisits = 100
	n.RaveRewardSum = -50

	// At raveConst == visits, alpha is 0: pure UCT.
	v := n.Value(20, 0.5, 10)
	uct := 5.0/10.0 + 0.5*math.Sqrt(2*math.Log(20)/10)
	assert.InDelta(t, uct, v, 1e-9)
}

func TestNodeValueWithNoRaveVisitsUsesZeroAMAF(t *testing.T) {
	n := newChild(newRoot(), hex.Cell{0, 0})
	n.Visits = 1
	n.RewardSum = 1
	v := n.Value(1, 0.5, 300)
	assert.Greater(t, v, 0.0)
}

func TestNodeTerminalAndCount(t *testing.T) {
	root := newRoot()
	assert.True(t, root.Terminal())

	a := newChild(root, hex.Cell{0, 0})
	b := newChild(root, hex.Cell{0, 1})
	root.Children[a.Move] = a
	root.Children[b.Move] = b

	assert.False(t, root.Terminal())
	assert.Equal(t, 3, root.count())
}
