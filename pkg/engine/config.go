package engine

import "time"

// Config collects the tunables an Engine is built from. Zero value is
// not directly usable; construct via DefaultConfig and functional
// options layered on top.
type Config struct {
	BoardSize      int
	Explore        float64
	RaveConst      float64
	LGRRandomness  float64
	UseLGR         bool
	Workers        int
	RootParallel   bool
	Movetime       time.Duration
}

// DefaultConfig returns sensible defaults: board size 11, exploration
// 0.5, RAVE constant 300, LGR randomness 0.5, 2 leaf-parallel workers,
// a 2 second move time.
func DefaultConfig() Config {
	return Config{
		BoardSize:     11,
		Explore:       0.5,
		RaveConst:     300,
		LGRRandomness: 0.5,
		Workers:       2,
		Movetime:      2 * time.Second,
	}
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithBoardSize sets the board side length.
func WithBoardSize(n int) Option {
	return func(c *Config) { c.BoardSize = n }
}

// WithExploration sets the UCT exploration constant.
func WithExploration(explore float64) Option {
	return func(c *Config) { c.Explore = explore }
}

// WithRaveConstant sets the RAVE blending constant K_rave.
func WithRaveConstant(raveConst float64) Option {
	return func(c *Config) { c.RaveConst = raveConst }
}

// WithLGR enables the Last-Good-Reply rollout policy with the given
// randomness threshold, in place of uniform-random rollouts.
func WithLGR(randomness float64) Option {
	return func(c *Config) {
		c.UseLGR = true
		c.LGRRandomness = randomness
	}
}

// WithWorkers sets the worker count: leaf-parallel rollout workers, or
// root-parallel engine count when RootParallel is set.
func WithWorkers(workers int) Option {
	return func(c *Config) { c.Workers = workers }
}

// WithRootParallel selects the root-parallelization driver over the
// default leaf-parallelization driver.
func WithRootParallel() Option {
	return func(c *Config) { c.RootParallel = true }
}

// WithMovetime sets the per-search wall-clock budget.
func WithMovetime(d time.Duration) Option {
	return func(c *Config) { c.Movetime = d }
}

// NewConfig builds a Config from options layered onto DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
