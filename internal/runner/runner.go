package runner

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"storageduration/internal/config"
	"storageduration/internal/metrics"
	"storageduration/pkg/examples"
)

// Runner executes examples against one output writer.
type Runner struct {
	out      io.Writer
	logger   *zap.Logger
	memStats bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger lets callers plug in their logger.
func WithLogger(logger *zap.Logger) Option { return func(r *Runner) { r.logger = logger } }

// WithMemStats logs heap activity around every run.
func WithMemStats(enabled bool) Option { return func(r *Runner) { r.memStats = enabled } }

// New creates a runner that prints example output to out.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one example with the given number of calls.
func (r *Runner) Run(ctx context.Context, name string, calls int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ex, err := examples.Lookup(name)
	if err != nil {
		return err
	}

	log := r.logger.With(zap.String("example", ex.Name), zap.Int("calls", calls))
	log.Debug("running example")

	run := func() error { return ex.Run(r.out, calls) }
	if !r.memStats {
		if err := run(); err != nil {
			return fmt.Errorf("%s: %w", ex.Name, err)
		}
		return nil
	}

	delta, err := metrics.Measure(run)
	log.Info("heap activity", delta.Fields()...)
	if err != nil {
		return fmt.Errorf("%s: %w", ex.Name, err)
	}
	return nil
}

// RunDefault executes an example with its default call count.
func (r *Runner) RunDefault(ctx context.Context, name string) error {
	ex, err := examples.Lookup(name)
	if err != nil {
		return err
	}
	return r.Run(ctx, ex.Name, ex.DefaultCalls)
}

// RunPlan executes every step in order. Each step gets fresh state, the same
// as restarting the program.
func (r *Runner) RunPlan(ctx context.Context, plan config.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	if plan.MemStats {
		r.memStats = true
	}

	for i, step := range plan.Steps {
		ex, err := examples.Lookup(step.Example)
		if err != nil {
			return err
		}
		if err := r.Run(ctx, ex.Name, step.CallsFor(ex)); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	r.logger.Debug("plan finished", zap.Int("steps", len(plan.Steps)))
	return nil
}
