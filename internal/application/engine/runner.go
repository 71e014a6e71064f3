package engine

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/spaceminer-go/internal/application/common"
)

// Controller steers the engine between frames, e.g. an autopilot or a replay
type Controller interface {
	Steer(ctx context.Context, e *Engine)
}

// Runner drives Tick at a fixed frame rate
type Runner struct {
	engine     *Engine
	limiter    *rate.Limiter
	controller Controller
	maxTicks   uint64
	logger     *slog.Logger
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithController steers the engine before every tick
func WithController(c Controller) RunnerOption {
	return func(r *Runner) { r.controller = c }
}

// WithMaxTicks stops the runner after n ticks (0 runs until cancelled)
func WithMaxTicks(n uint64) RunnerOption {
	return func(r *Runner) { r.maxTicks = n }
}

// WithRunnerLogger sets the runner's logger
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a runner pacing ticks at fps frames per second.
// A non-positive fps runs unpaced, as fast as ticks complete.
func NewRunner(engine *Engine, fps int, opts ...RunnerOption) *Runner {
	limit := rate.Inf
	if fps > 0 {
		limit = rate.Limit(fps)
	}
	r := &Runner{
		engine:  engine,
		limiter: rate.NewLimiter(limit, 1),
		logger:  common.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ticks until ctx is cancelled or the tick limit is reached.
// Cancellation is a clean stop and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	last := time.Now()
	var ticks uint64

	r.logger.Info("simulation started", "max_ticks", r.maxTicks)
	defer func() { r.logger.Info("simulation stopped", "ticks", ticks) }()

	for r.maxTicks == 0 || ticks < r.maxTicks {
		// Wait only fails when ctx is done or its deadline would pass first
		if err := r.limiter.Wait(ctx); err != nil {
			return nil
		}

		if r.controller != nil {
			r.controller.Steer(ctx, r.engine)
		}

		now := time.Now()
		r.engine.Tick(now.Sub(last))
		last = now
		ticks++
	}
	return nil
}
