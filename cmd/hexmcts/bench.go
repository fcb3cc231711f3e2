package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/hexmcts/engine/pkg/engine"
	"github.com/hexmcts/engine/pkg/hex"
	"golang.org/x/sync/errgroup"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// benchStats accumulates wins across concurrent self-play workers,
// patterned on a versus-arena win counter but specialized to a
// single Hex configuration played against itself (no separate player
// identities: only which side, Red or Blue, won each game).
type benchStats struct {
	games    atomic.Int64
	redWins  atomic.Int64
	blueWins atomic.Int64
}

func (s *benchStats) record(winner hex.Player) {
	s.games.Add(1)
	switch winner {
	case hex.Red:
		s.redWins.Add(1)
	case hex.Blue:
		s.blueWins.Add(1)
	}
}

// runBenchmark plays nGames self-play games with cfg on both sides,
// split across cfg.Workers concurrent workers, and prints a summary of
// which side won how often. Self-play first-move advantage is the
// quantity of interest: a balanced engine and board size should show
// Red winning somewhat more than half, since Red moves first and no
// swap policy is in effect during benchmarking.
func runBenchmark(cfg engine.Config, nGames int, logger *slog.Logger) error {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	stats := &benchStats{}
	g, ctx := errgroup.WithContext(context.Background())

	for w := 0; w < workers; w++ {
		share := nGames / workers
		if w < nGames%workers {
			share++
		}
		count := share

		g.Go(func() error {
			return playGames(ctx, cfg, count, stats)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	total := stats.games.Load()
	logger.Info("benchmark complete",
		slog.Int64("games", total),
		slog.Int64("red_wins", stats.redWins.Load()),
		slog.Int64("blue_wins", stats.blueWins.Load()),
	)
	fmt.Printf("%d games: Red %d, Blue %d\n", total, stats.redWins.Load(), stats.blueWins.Load())
	return nil
}

func playGames(ctx context.Context, cfg engine.Config, count int, stats *benchStats) error {
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		winner, err := playOneGame(ctx, cfg)
		if err != nil {
			return err
		}
		stats.record(winner)
	}
	return nil
}

func playOneGame(ctx context.Context, cfg engine.Config) (hex.Player, error) {
	red := engine.New(cfg, discardLogger)
	blue := engine.New(cfg, discardLogger)
	state := hex.NewGameState(cfg.BoardSize)

	for state.Winner() == hex.None {
		mover := red
		if state.ToPlay == hex.Blue {
			mover = blue
		}

		if err := mover.Search(ctx, 0); err != nil {
			return hex.None, err
		}
		move, ok := mover.BestMove()
		if !ok {
			break
		}
		if err := state.Play(move); err != nil {
			return hex.None, err
		}
		if _, err := red.Move(move); err != nil {
			return hex.None, err
		}
		if _, err := blue.Move(move); err != nil {
			return hex.None, err
		}
	}
	return state.Winner(), nil
}
