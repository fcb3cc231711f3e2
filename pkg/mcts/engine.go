package mcts

import (
	"context"
	"math/rand"
	"time"

	"github.com/hexmcts/engine/pkg/hex"
)

// DefaultExploration and DefaultRaveConst are the defaults
// for the combined UCT+RAVE engine.
const (
	DefaultExploration = 0.5
	DefaultRaveConst   = 300.0
)

// Engine is a single-threaded MCTS/RAVE search tree over a Hex
// GameState. Both the plain RAVE engine and the LGR engine are this
// same type, differing only in which RolloutPolicy they're constructed
// with.
type Engine struct {
	RootState *hex.GameState
	Root      *Node

	Explore  float64
	RaveConst float64
	Rollout  RolloutPolicy

	rng *rand.Rand

	lastRollouts int
	lastRunTime  time.Duration

	listener      *Listener
	cycleInterval int
}

// Stats is a snapshot of search progress, handed to a Listener's
// callbacks from the search loop's own goroutine.
type Stats struct {
	Cycles   int
	Nodes    int
	Elapsed  time.Duration
	BestMove hex.Cell
	HasBest  bool
}

// ListenerFunc receives a Stats snapshot.
type ListenerFunc func(Stats)

// Listener attaches optional callbacks to an Engine's search loop: one
// fired every cycle interval's worth of rollouts (see SetCycleInterval),
// one fired once when the search
// stops. Evaluating BestMove on every cycle is not free, so a small
// interval noticeably slows the search; use it for live progress
// reporting only.
type Listener struct {
	onCycle ListenerFunc
	onStop  ListenerFunc
}

// OnCycle attaches the periodic progress callback.
func (l *Listener) OnCycle(f ListenerFunc) *Listener {
	l.onCycle = f
	return l
}

// OnStop attaches the search-end callback.
func (l *Listener) OnStop(f ListenerFunc) *Listener {
	l.onStop = f
	return l
}

// SetListener attaches listener to the engine, replacing any previous
// one. A nil listener disables callbacks.
func (e *Engine) SetListener(listener *Listener) {
	e.listener = listener
}

// SetCycleInterval sets how many rollouts pass between onCycle
// invocations. Values below 1 are treated as 1.
func (e *Engine) SetCycleInterval(n int) {
	if n < 1 {
		n = 1
	}
	e.cycleInterval = n
}

func (e *Engine) snapshot(cycles int, elapsed time.Duration) Stats {
	move, ok := e.BestMove()
	return Stats{Cycles: cycles, Nodes: e.Root.count(), Elapsed: elapsed, BestMove: move, HasBest: ok}
}

// New returns an Engine over state, using policy for rollouts.
// explore and raveConst are the UCT/RAVE constants; rng is the engine's
// own source of randomness. Each engine must own an independent RNG —
// sharing one across goroutines races.
func New(state *hex.GameState, explore, raveConst float64, policy RolloutPolicy, rng *rand.Rand) *Engine {
	return &Engine{
		RootState:     state.Clone(),
		Root:          newRoot(),
		Explore:       explore,
		RaveConst:     raveConst,
		Rollout:       policy,
		rng:           rng,
		cycleInterval: 1000,
	}
}

// NewRAVE returns an Engine using the uniform-random rollout policy.
func NewRAVE(state *hex.GameState, explore, raveConst float64, rng *rand.Rand) *Engine {
	return New(state, explore, raveConst, UniformRollout{}, rng)
}

// NewLGR returns an Engine using the Last-Good-Reply rollout policy.
func NewLGR(state *hex.GameState, explore, raveConst, randomness float64, rng *rand.Rand) *Engine {
	return New(state, explore, raveConst, NewLGRRollout(randomness), rng)
}

// Search grows the tree until ctx is cancelled or budget has elapsed,
// whichever comes first. It is a no-op if the root state already has a
// winner.
func (e *Engine) Search(ctx context.Context, budget time.Duration) {
	start := time.Now()
	rollouts := 0

	if e.RootState.Winner() == hex.None {
		deadline := start.Add(budget)
		for time.Now().Before(deadline) {
			select {
			case <-ctx.Done():
				goto done
			default:
			}

			node, state := e.SelectLeaf()
			turn := state.ToPlay
			result := e.Rollout.Rollout(state, e.rng)
			e.Backup(node, turn, result)
			rollouts++

			if e.listener != nil && e.listener.onCycle != nil && rollouts%e.cycleInterval == 0 {
				e.listener.onCycle(e.snapshot(rollouts, time.Since(start)))
			}
		}
	}

done:
	e.lastRollouts = rollouts
	e.lastRunTime = time.Since(start)
	if e.listener != nil && e.listener.onStop != nil {
		e.listener.onStop(e.snapshot(rollouts, e.lastRunTime))
	}
}

// SelectLeaf descends from the root, always following the max-value
// child (random tie-break), stopping early at the first never-visited
// child it meets (first-visit priority) or at a leaf with no children,
// which it then expands once. Exported so a parallel driver can run its
// own select/rollout/backup cycle directly against the tree.
func (e *Engine) SelectLeaf() (*Node, *hex.GameState) {
	node := e.Root
	state := e.RootState.Clone()

	for len(node.Children) > 0 {
		node = e.maxValueChild(node)
		if err := state.Play(node.Move); err != nil {
			panic(err)
		}
		if node.Visits == 0 {
			return node, state
		}
	}

	if e.expand(node, state) {
		node = e.randomChild(node)
		if err := state.Play(node.Move); err != nil {
			panic(err)
		}
	}
	return node, state
}

// expand populates node's children from state's legal moves, unless
// state is already terminal, in which case there is nothing to expand.
func (e *Engine) expand(node *Node, state *hex.GameState) bool {
	if state.Winner() != hex.None {
		return false
	}
	for _, move := range state.Moves() {
		node.Children[move] = newChild(node, move)
	}
	return true
}

// maxValueChild returns the child of node with the highest UCT+RAVE
// value, breaking ties uniformly at random.
func (e *Engine) maxValueChild(node *Node) *Node {
	best := make([]*Node, 0, len(node.Children))
	bestValue := 0.0

	for _, child := range node.Children {
		v := child.Value(node.Visits, e.Explore, e.RaveConst)
		switch {
		case len(best) == 0 || v > bestValue:
			bestValue = v
			best = best[:0]
			best = append(best, child)
		case v == bestValue:
			best = append(best, child)
		}
	}

	return best[e.rng.Intn(len(best))]
}

// randomChild returns a uniformly random child of node.
func (e *Engine) randomChild(node *Node) *Node {
	idx := e.rng.Intn(len(node.Children))
	i := 0
	for _, child := range node.Children {
		if i == idx {
			return child
		}
		i++
	}
	panic("mcts: randomChild reached an empty children map")
}

// Backup walks from node to the root, crediting RAVE statistics on the
// way and alternating the reward sign per ply. turn is the player to
// move at node (i.e. the state SelectLeaf produced right before the
// rollout ran).
func (e *Engine) Backup(node *Node, turn hex.Player, result RolloutResult) {
	reward := 1.0
	if result.Winner == turn {
		reward = -1.0
	}

	for node != nil {
		ravePts := result.RedRavePts
		if turn == hex.Blue {
			ravePts = result.BlueRavePts
		}
		for _, pt := range ravePts {
			if child, ok := node.Children[pt]; ok {
				child.RaveRewardSum += -reward
				child.RaveVisits++
			}
		}

		node.Visits++
		node.RewardSum += reward

		turn = turn.Opponent()
		reward = -reward
		node = node.Parent
	}
}

// BackupMany folds len(results) independent rollouts from the same node
// and turn into a single walk from node to the root: node.Visits grows
// by len(results) per node instead of one at a time, and node.RewardSum
// is credited with the sum of each rollout's signed reward at that ply.
// RAVE points are credited once per rollout that reached them (not
// deduplicated across rollouts), each weighted by that rollout's own
// signed reward at the ply it's credited at, so the result is exactly
// what len(results) sequential calls to Backup would have produced,
// done in one pass.
func (e *Engine) BackupMany(node *Node, turn hex.Player, results []RolloutResult) {
	rewards := make([]float64, len(results))
	for i, r := range results {
		rewards[i] = 1.0
		if r.Winner == turn {
			rewards[i] = -1.0
		}
	}

	for node != nil {
		combined := 0.0
		for _, r := range rewards {
			combined += r
		}

		for i, r := range results {
			ravePts := r.RedRavePts
			if turn == hex.Blue {
				ravePts = r.BlueRavePts
			}
			for _, pt := range ravePts {
				if child, ok := node.Children[pt]; ok {
					child.RaveRewardSum += -rewards[i]
					child.RaveVisits++
				}
			}
		}

		node.Visits += len(results)
		node.RewardSum += combined

		turn = turn.Opponent()
		for i := range rewards {
			rewards[i] = -rewards[i]
		}
		node = node.Parent
	}
}

// BestMove returns the root child with the most visits, breaking ties
// uniformly at random. ok is false if the root state already has a
// winner or the root has no children yet.
func (e *Engine) BestMove() (move hex.Cell, ok bool) {
	if e.RootState.Winner() != hex.None {
		return hex.Cell{}, false
	}

	best := make([]*Node, 0, len(e.Root.Children))
	maxVisits := -1
	for _, child := range e.Root.Children {
		switch {
		case child.Visits > maxVisits:
			maxVisits = child.Visits
			best = best[:0]
			best = append(best, child)
		case child.Visits == maxVisits:
			best = append(best, child)
		}
	}

	if len(best) == 0 {
		return hex.Cell{}, false
	}

	chosen := best[e.rng.Intn(len(best))]
	return chosen.Move, true
}

// Move advances the root state by move. If move is one of the root's
// current children, that child is promoted to root (reusing its
// subtree's statistics) and reused reports true. Otherwise the tree is
// discarded and rebuilt from scratch on the advanced state — e.g. the
// opponent played something outside the tree because a previous search
// ended early.
func (e *Engine) Move(move hex.Cell) (reused bool, err error) {
	if child, ok := e.Root.Children[move]; ok {
		child.Parent = nil
		e.Root = child
		if err := e.RootState.Play(move); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := e.RootState.Play(move); err != nil {
		return false, err
	}
	e.Root = newRoot()
	return false, nil
}

// SetGameState replaces the root state with a clone of state and
// discards the tree entirely.
func (e *Engine) SetGameState(state *hex.GameState) {
	e.RootState = state.Clone()
	e.Root = newRoot()
	if lgr, ok := e.Rollout.(*LGRRollout); ok {
		lgr.Reset()
	}
}

// Statistics returns the rollout count of the most recent Search call,
// the size of the current tree, and that search's wall-clock duration.
func (e *Engine) Statistics() (rollouts, nodeCount int, runTime time.Duration) {
	return e.lastRollouts, e.Root.count(), e.lastRunTime
}
