// Package engine provides the façade over pkg/mcts and pkg/parallel:
// the state machine a match driver actually drives (set_gamestate,
// search, move, best_move, statistics), with structured logging and a
// per-instance identity for distinguishing concurrent engines in logs.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/mcts"
	"github.com/hexmcts/engine/pkg/parallel"
)

// state is the façade's position in the Fresh -> Searched -> Moved ->
// (Searched|Moved|Reset) machine.
type state int

const (
	stateFresh state = iota
	stateSearched
	stateMoved
)

// searcher is satisfied by *parallel.LeafDriver directly and by
// *parallel.RootDriver through rootDriverAdapter, letting Engine stay
// agnostic to which parallelization strategy backs it.
type searcher interface {
	Search(ctx context.Context, budget time.Duration)
	BestMove() (hex.Cell, bool)
	Move(hex.Cell) (bool, error)
	SetGameState(*hex.GameState)
	Statistics() (rollouts, nodeCount int, runTime time.Duration)
}

// rootDriverAdapter lets *parallel.RootDriver satisfy searcher, whose
// Move signature differs (no reuse-bool — every engine always rebases).
type rootDriverAdapter struct{ *parallel.RootDriver }

func (a rootDriverAdapter) Move(m hex.Cell) (bool, error) {
	err := a.RootDriver.Move(m)
	return false, err
}

// Engine is the public façade: construct it with a Config, then drive
// it through SetGameState/Search/Move/BestMove/Statistics exactly as a
// match protocol handler would.
type Engine struct {
	ID     uuid.UUID
	cfg    Config
	log    *slog.Logger
	search searcher
	state  state
}

// New constructs an Engine over a fresh board of cfg.BoardSize, in the
// Fresh state. A nil logger defaults to slog.Default().
func New(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	e := &Engine{ID: id, cfg: cfg, log: logger.With(slog.String("engine_id", id.String())), state: stateFresh}
	e.search = e.buildSearcher(hex.NewGameState(cfg.BoardSize))
	return e
}

func (e *Engine) buildSearcher(state0 *hex.GameState) searcher {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if e.cfg.RootParallel {
		policy := func(r *rand.Rand) mcts.RolloutPolicy {
			if e.cfg.UseLGR {
				return mcts.NewLGRRollout(e.cfg.LGRRandomness)
			}
			return mcts.UniformRollout{}
		}
		driver := parallel.NewRootDriver(state0, e.cfg.Explore, e.cfg.RaveConst, policy, e.cfg.Workers, rng)
		for i, worker := range driver.Engines {
			worker.SetListener(e.progressListener(i))
		}
		return rootDriverAdapter{driver}
	}

	// A leaf-parallel LGRRollout's reply tables are shared across every
	// worker goroutine (LeafDriver fans one selection out to Workers
	// concurrent Rollout calls on the same policy instance), so more
	// than one worker races on recordReplies' map writes. Clamp to a
	// single worker; root parallelization already gives each engine its
	// own policy and is unaffected.
	workers := e.cfg.Workers
	if e.cfg.UseLGR && workers > 1 {
		e.log.Warn("LGR rollout policy does not support leaf-parallel workers, clamping to 1",
			slog.Int("requested_workers", workers))
		workers = 1
	}

	var mctsEngine *mcts.Engine
	if e.cfg.UseLGR {
		mctsEngine = mcts.NewLGR(state0, e.cfg.Explore, e.cfg.RaveConst, e.cfg.LGRRandomness, rng)
	} else {
		mctsEngine = mcts.NewRAVE(state0, e.cfg.Explore, e.cfg.RaveConst, rng)
	}
	mctsEngine.SetListener(e.progressListener(-1))
	return parallel.NewLeafDriver(mctsEngine, workers)
}

// progressListener returns a Listener that logs search progress at
// debug level: one record per cycle interval and a final one when the
// search stops. worker identifies which root-parallel engine is
// reporting, or -1 outside root parallelization where there's only one.
func (e *Engine) progressListener(worker int) *mcts.Listener {
	report := func(label string) mcts.ListenerFunc {
		return func(s mcts.Stats) {
			args := []any{slog.Int("cycles", s.Cycles), slog.Int("nodes", s.Nodes), slog.Duration("elapsed", s.Elapsed)}
			if worker >= 0 {
				args = append(args, slog.Int("worker", worker))
			}
			if s.HasBest {
				args = append(args, slog.String("best_move", s.BestMove.String()))
			}
			e.log.Debug(label, args...)
		}
	}
	return (&mcts.Listener{}).OnCycle(report("search progress")).OnStop(report("search stopped"))
}

// SetGameState replaces the position and returns the façade to Fresh.
func (e *Engine) SetGameState(s *hex.GameState) {
	e.search.SetGameState(s)
	e.state = stateFresh
}

// Search grows the tree for budget (or cfg.Movetime if budget is 0).
// It is only meaningful when the root state has no winner yet; calling
// it otherwise is harmless but produces no rollouts.
func (e *Engine) Search(ctx context.Context, budget time.Duration) error {
	if budget == 0 {
		budget = e.cfg.Movetime
	}

	start := time.Now()
	e.search.Search(ctx, budget)
	rollouts, nodeCount, runTime := e.search.Statistics()

	e.log.Info("search completed",
		slog.Int("rollouts", rollouts),
		slog.Int("nodes", nodeCount),
		slog.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		slog.Int64("run_time_ms", runTime.Milliseconds()),
	)
	e.state = stateSearched
	return nil
}

// BestMove returns the root's most-visited child, or ok=false for the
// GAME_OVER sentinel described by the engine façade contract.
func (e *Engine) BestMove() (hex.Cell, bool) {
	return e.search.BestMove()
}

// Move advances the façade's position by m. reused reports whether the
// existing subtree was kept (TreeMiss recovered silently otherwise, per
// the façade contract — it is never surfaced as an error).
func (e *Engine) Move(m hex.Cell) (reused bool, err error) {
	reused, err = e.search.Move(m)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	e.state = stateMoved
	return reused, nil
}

// Statistics returns the rollout count and run time of the most recent
// Search call, and the size of the current tree.
func (e *Engine) Statistics() (rollouts, nodeCount int, runTime time.Duration) {
	return e.search.Statistics()
}
