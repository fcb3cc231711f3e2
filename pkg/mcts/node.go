// Package mcts implements Monte Carlo Tree Search with RAVE (Rapid
// Action Value Estimation) for Hex, plus a Last-Good-Reply rollout
// policy variant.
package mcts

import (
	"math"

	"github.com/hexmcts/engine/pkg/hex"
)

// Node is a single position in the search tree. The root has no Move
// and no Parent. Children are keyed by the move that leads to them, so
// lookups during reparenting (Engine.Move) are O(1).
//
// Parent is a non-owning back-reference used only for the upward backup
// walk; it is cleared whenever a node is promoted to root, so the
// discarded former root and its un-chosen subtrees become garbage.
type Node struct {
	Move    hex.Cell
	HasMove bool
	Parent  *Node
	Children map[hex.Cell]*Node

	Visits        int
	RewardSum     float64
	RaveVisits    int
	RaveRewardSum float64
}

// newRoot returns an empty, childless root node.
func newRoot() *Node {
	return &Node{Children: make(map[hex.Cell]*Node)}
}

// newChild returns a node reached from parent by playing move.
func newChild(parent *Node, move hex.Cell) *Node {
	return &Node{
		Move:     move,
		HasMove:  true,
		Parent:   parent,
		Children: make(map[hex.Cell]*Node),
	}
}

// Value is the UCT+RAVE selection score of this node as a child of a
// parent with parentVisits visits.
//
// An unvisited child is always preferred (forces exploration) unless
// explore is exactly 0, in which case it scores 0 like everything else.
// Otherwise the score blends UCT and AMAF (all-moves-as-first) by
// alpha = max(0, (raveConst-visits)/raveConst): heavily AMAF-weighted
// while visits are low relative to raveConst, converging to pure UCT as
// visits grow past it.
func (n *Node) Value(parentVisits int, explore, raveConst float64) float64 {
	if n.Visits == 0 {
		if explore == 0 {
			return 0
		}
		return math.Inf(1)
	}

	alpha := math.Max(0, (raveConst-float64(n.Visits))/raveConst)
	uct := n.RewardSum/float64(n.Visits) +
		explore*math.Sqrt(2*math.Log(float64(parentVisits))/float64(n.Visits))

	amaf := 0.0
	if n.RaveVisits > 0 {
		amaf = n.RaveRewardSum / float64(n.RaveVisits)
	}

	return (1-alpha)*uct + alpha*amaf
}

// Terminal reports whether this node has no children, i.e. whether it
// is a leaf of the tree as currently expanded (not necessarily a
// terminal game state — only Engine.expand decides that by consulting
// Winner).
func (n *Node) Terminal() bool {
	return len(n.Children) == 0
}

// count returns the number of nodes in the subtree rooted at n,
// including n itself, via a depth-first traversal.
func (n *Node) count() int {
	total := 1
	for _, child := range n.Children {
		total += child.count()
	}
	return total
}
