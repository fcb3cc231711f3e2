// Command hexmcts plays Hex against the match driver described in the
// engine's protocol package, or benchmarks one local configuration in
// self-play against itself.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hexmcts/engine/pkg/engine"
	"github.com/spf13/cobra"
)

var (
	driverAddr    string
	processes     int
	exploreConst  float64
	raveConst     float64
	useLGR        bool
	lgrRandomness float64
	movetimeSec   float64
	boardSize     int

	benchGames int
)

var rootCmd = &cobra.Command{
	Use:   "hexmcts",
	Short: "A Monte Carlo Tree Search engine for Hex",
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Connect to a match driver and play one game",
	RunE:  runPlay,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run local self-play benchmark games of one configuration against itself",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)

	playCmd.Flags().StringVar(&driverAddr, "addr", "127.0.0.1:1234", "match driver address")
	playCmd.Flags().IntVarP(&processes, "processes", "p", 2, "worker count: root-parallel engines if > 1, else leaf-parallel rollout workers")
	playCmd.Flags().Float64VarP(&exploreConst, "explore", "e", engine.DefaultConfig().Explore, "UCT exploration constant")
	playCmd.Flags().Float64VarP(&raveConst, "rave", "r", engine.DefaultConfig().RaveConst, "RAVE blending constant")
	playCmd.Flags().BoolVar(&useLGR, "lgr", false, "use the Last-Good-Reply rollout policy instead of uniform random")
	playCmd.Flags().Float64Var(&lgrRandomness, "lgr-randomness", engine.DefaultConfig().LGRRandomness, "LGR randomness threshold")
	playCmd.Flags().Float64Var(&movetimeSec, "movetime", engine.DefaultConfig().Movetime.Seconds(), "seconds of search per move")
	playCmd.Flags().IntVar(&boardSize, "board-size", engine.DefaultConfig().BoardSize, "board side length, overridden by the driver's START frame")

	benchCmd.Flags().IntVarP(&processes, "processes", "p", 2, "worker count passed to both sides")
	benchCmd.Flags().IntVar(&benchGames, "games", 20, "number of self-play games")
	benchCmd.Flags().Float64Var(&movetimeSec, "movetime", 0.5, "seconds of search per move")
	benchCmd.Flags().IntVar(&boardSize, "board-size", 7, "board side length")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildConfig() engine.Config {
	opts := []engine.Option{
		engine.WithBoardSize(boardSize),
		engine.WithExploration(exploreConst),
		engine.WithRaveConstant(raveConst),
		engine.WithWorkers(processes),
		engine.WithMovetime(time.Duration(movetimeSec * float64(time.Second))),
	}
	if processes > 1 {
		opts = append(opts, engine.WithRootParallel())
	}
	if useLGR {
		opts = append(opts, engine.WithLGR(lgrRandomness))
	}
	return engine.NewConfig(opts...)
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return playMatch(driverAddr, buildConfig(), logger)
}

func runBench(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return runBenchmark(buildConfig(), benchGames, logger)
}
