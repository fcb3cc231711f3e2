// Package parallel implements the two multithreaded search drivers: leaf
// parallelization (one selection, many concurrent rollouts from that
// leaf) and root parallelization (many independent engines merged at
// decision time). Both are built on golang.org/x/sync/errgroup rather
// than a raw sync.WaitGroup, so a panicking worker surfaces instead of
// silently dropping a rollout.
package parallel

import (
	"context"
	"math/rand"
	"time"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/mcts"
	"golang.org/x/sync/errgroup"
)

// LeafDriver wraps a single Engine and fans one tree selection out to
// Workers concurrent rollouts (leaf parallelization).
//
// Aggregate controls the backup contract when Workers > 1. By default
// (false) each rollout is backed up sequentially and independently,
// which is the reference behavior this driver was built to match: node
// visit counts grow by exactly one per completed rollout and RAVE
// statistics accumulate the same way a single-threaded engine would.
// Setting Aggregate to true instead sums the K rollouts' signed rewards
// into a single backup call with visits incremented by K — one walk
// from the selected leaf to the root instead of K, at the cost of only
// being able to report the combined reward and node count, not each
// rollout's individual contribution in isolation.
type LeafDriver struct {
	Engine    *mcts.Engine
	Workers   int
	Aggregate bool
}

// NewLeafDriver returns a driver with the given worker count. Workers
// below 1 is treated as 1 (no parallelism, equivalent to Engine.Search).
func NewLeafDriver(engine *mcts.Engine, workers int) *LeafDriver {
	if workers < 1 {
		workers = 1
	}
	return &LeafDriver{Engine: engine, Workers: workers}
}

type leafRollout struct {
	turn   hex.Player
	result mcts.RolloutResult
}

// Search runs selection/rollout/backup cycles until ctx is cancelled or
// budget elapses. Each cycle performs one SelectLeaf on the shared tree,
// then Workers independent rollouts from clones of that leaf's state,
// run concurrently, then applies their backups.
func (d *LeafDriver) Search(ctx context.Context, budget time.Duration) {
	if d.Engine.RootState.Winner() != hex.None {
		return
	}

	start := time.Now()
	deadline := start.Add(budget)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return
		default:
		}

		node, state := d.Engine.SelectLeaf()
		turn := state.ToPlay

		rollouts, err := d.runWorkers(state, turn)
		if err != nil {
			return
		}

		if d.Aggregate {
			d.backupAggregate(node, turn, rollouts)
		} else {
			for _, r := range rollouts {
				d.Engine.Backup(node, r.turn, r.result)
			}
		}
	}
}

// runWorkers rolls out Workers independent clones of state concurrently,
// each with its own RNG. They share d.Engine.Rollout, which is safe for
// UniformRollout (stateless) but not for LGRRollout, whose reply tables
// are mutated by every Rollout call: callers must not combine Workers >
// 1 with an LGR policy (pkg/engine's façade enforces this by clamping).
func (d *LeafDriver) runWorkers(state *hex.GameState, turn hex.Player) ([]leafRollout, error) {
	results := make([]leafRollout, d.Workers)
	g, _ := errgroup.WithContext(context.Background())

	for i := 0; i < d.Workers; i++ {
		i := i
		g.Go(func() error {
			clone := state.Clone()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(i)))
			result := d.Engine.Rollout.Rollout(clone, rng)
			results[i] = leafRollout{turn: turn, result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// backupAggregate folds Workers rollouts into the single combined-reward
// walk Engine.BackupMany performs, rather than Workers separate calls to
// Backup.
func (d *LeafDriver) backupAggregate(node *mcts.Node, turn hex.Player, rollouts []leafRollout) {
	results := make([]mcts.RolloutResult, len(rollouts))
	for i, r := range rollouts {
		results[i] = r.result
	}
	d.Engine.BackupMany(node, turn, results)
}

// BestMove, Move, SetGameState and Statistics delegate to the wrapped
// Engine so a LeafDriver can stand in anywhere a plain Engine is
// expected, with parallel search as the only difference.

// BestMove returns the underlying Engine's best move.
func (d *LeafDriver) BestMove() (hex.Cell, bool) {
	return d.Engine.BestMove()
}

// Move advances the underlying Engine's tree and root state.
func (d *LeafDriver) Move(m hex.Cell) (bool, error) {
	return d.Engine.Move(m)
}

// SetGameState resets the underlying Engine to state.
func (d *LeafDriver) SetGameState(state *hex.GameState) {
	d.Engine.SetGameState(state)
}

// Statistics returns the underlying Engine's last-search statistics.
func (d *LeafDriver) Statistics() (rollouts, nodeCount int, runTime time.Duration) {
	return d.Engine.Statistics()
}
