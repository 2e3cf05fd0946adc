package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storageduration/internal/config"
	"storageduration/internal/runner"
	"storageduration/pkg/examples"
)

// app carries what the commands share for one invocation.
type app struct {
	verbose  bool
	memStats bool
	calls    int
	plan     string

	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "storage",
		Short: "Storage duration playground",
		Long: `Runs small programs that show how long variables live and who can see them:
  global-scope      a process-wide value mutated by another function
  normal-vs-static  a transient local next to a persistent local
  static-local      a persistent local counter`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.memStats, "memstats", false, "Log heap activity around each run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ex := range examples.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ex.Name, ex.Summary); err != nil {
					return err
				}
			}
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [example]",
		Short: "Run one example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.runner(cmd)
			if cmd.Flags().Changed("calls") {
				return r.Run(cmd.Context(), args[0], a.calls)
			}
			return r.RunDefault(cmd.Context(), args[0])
		},
	}
	runCmd.Flags().IntVarP(&a.calls, "calls", "n", 3, "Number of calls to make (ignored by global-scope)")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Run a sequence of examples from a YAML plan",
		Long: `Runs every step of a plan file in order. Each step starts from fresh
state, exactly as if the program had been restarted.

Without --config every example runs once with its default call count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := config.Default()
			if a.plan != "" {
				var err error
				if plan, err = config.Load(a.plan); err != nil {
					return err
				}
			}
			return a.runner(cmd).RunPlan(cmd.Context(), plan)
		},
	}
	planCmd.Flags().StringVarP(&a.plan, "config", "c", "", "Path to a YAML plan file")

	rootCmd.AddCommand(listCmd, runCmd, planCmd)
	return rootCmd
}

func (a *app) runner(cmd *cobra.Command) *runner.Runner {
	return runner.New(cmd.OutOrStdout(),
		runner.WithLogger(a.logger),
		runner.WithMemStats(a.memStats),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
