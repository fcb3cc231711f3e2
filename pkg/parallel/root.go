package parallel

import (
	"context"
	"math/rand"
	"time"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/mcts"
	"golang.org/x/sync/errgroup"
)

// RootDriver runs Workers independent engines, each over its own clone
// of the root state and its own tree, for the full search budget, then
// merges root-child visit counts at decision time (root parallelization).
// Unlike leaf parallelization, the trees never interact during search,
// so there is no shared-state synchronization cost mid-search — only the
// merge at the end and the rebase on Move.
type RootDriver struct {
	Engines []*mcts.Engine
	rng     *rand.Rand
}

// NewRootDriver builds workers independent engines over state, each
// seeded from a distinct source derived from rng, so every engine's
// random stream is fixed by rng's seed and the worker count. Searches
// still stop on a wall-clock deadline, so the number of rollouts, and
// with it the chosen move, can differ between runs.
func NewRootDriver(state *hex.GameState, explore, raveConst float64, policy func(rng *rand.Rand) mcts.RolloutPolicy, workers int, rng *rand.Rand) *RootDriver {
	if workers < 1 {
		workers = 1
	}
	engines := make([]*mcts.Engine, workers)
	for i := 0; i < workers; i++ {
		workerRng := rand.New(rand.NewSource(rng.Int63()))
		engines[i] = mcts.New(state, explore, raveConst, policy(workerRng), workerRng)
	}
	return &RootDriver{Engines: engines, rng: rng}
}

// Search runs every engine's Search concurrently for budget, joined via
// an errgroup so a panicking worker engine surfaces instead of leaving
// the driver holding a partially-searched tree.
func (d *RootDriver) Search(ctx context.Context, budget time.Duration) {
	g, gCtx := errgroup.WithContext(ctx)
	for _, e := range d.Engines {
		e := e
		g.Go(func() error {
			e.Search(gCtx, budget)
			return nil
		})
	}
	_ = g.Wait()
}

// BestMove merges every engine's root-child visit counts and returns the
// cell with the most combined visits, breaking ties uniformly at random.
// ok is false if every engine reports no legal move (root state already
// decided).
func (d *RootDriver) BestMove() (hex.Cell, bool) {
	visits := make(map[hex.Cell]int)
	for _, e := range d.Engines {
		for _, child := range e.Root.Children {
			visits[child.Move] += child.Visits
		}
	}
	if len(visits) == 0 {
		return hex.Cell{}, false
	}

	best := make([]hex.Cell, 0, len(visits))
	maxVisits := -1
	for move, v := range visits {
		switch {
		case v > maxVisits:
			maxVisits = v
			best = best[:0]
			best = append(best, move)
		case v == maxVisits:
			best = append(best, move)
		}
	}

	return best[d.rng.Intn(len(best))], true
}

// Move advances every engine's own tree and root state by move
// independently (each engine rebases exactly as Engine.Move describes).
func (d *RootDriver) Move(move hex.Cell) error {
	for _, e := range d.Engines {
		if _, err := e.Move(move); err != nil {
			return err
		}
	}
	return nil
}

// SetGameState resets every engine to state.
func (d *RootDriver) SetGameState(state *hex.GameState) {
	for _, e := range d.Engines {
		e.SetGameState(state)
	}
}

// Statistics sums rollout and node counts across every engine, and
// returns the longest of their run times (the wall-clock the caller
// actually waited).
func (d *RootDriver) Statistics() (rollouts, nodeCount int, runTime time.Duration) {
	for _, e := range d.Engines {
		r, n, t := e.Statistics()
		rollouts += r
		nodeCount += n
		if t > runTime {
			runTime = t
		}
	}
	return rollouts, nodeCount, runTime
}
