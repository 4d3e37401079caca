package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spbench/bench"
	"github.com/katalvlaran/spbench/internal/log"
)

var (
	flagConfig      string
	flagLogLevel    string
	flagPretty      bool
	flagMetricsFile string
	flagAlgos       []string
	flagRepeat      int
	flagParallelism int
	flagTimeout     time.Duration
)

// session is the per-invocation state shared by the subcommands.
type session struct {
	cfg     bench.Config
	log     log.Logger
	metrics *bench.Metrics
}

var current *session

func main() {
	err := newRootCmd().Execute()
	if ferr := flushMetrics(); ferr != nil {
		fmt.Fprintln(os.Stderr, "Error:", ferr)
		err = ferr
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spbench",
		Short: "Benchmark heap and scan Dijkstra on shortest-path instances",
		Long: `spbench runs two implementations of Dijkstra's single-pair shortest-path
algorithm (a lazy-deletion binary heap and an O(V^2) linear scan) over JSON
graph instances, measures time and peak heap memory of every call, and checks
that both engines agree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			current = s
			return nil
		},
	}

	// Global flags override the config file and the environment.
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config path (default $SPBENCH_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "Human-readable console logs")
	rootCmd.PersistentFlags().StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus text metrics here on exit")
	rootCmd.PersistentFlags().StringSliceVar(&flagAlgos, "algos", nil, "Engines to run, first is the reference (heap,scan)")
	rootCmd.PersistentFlags().IntVar(&flagRepeat, "repeat", 0, "Measured runs per instance and engine")
	rootCmd.PersistentFlags().IntVar(&flagParallelism, "parallelism", 0, "Concurrent measurements")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Per-run deadline, 0 disables")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(scaleCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(statsCmd())

	return rootCmd
}

// flushMetrics writes the metrics file even when the command failed, so
// partial batches still leave their counters behind.
func flushMetrics() error {
	if current == nil || current.cfg.Metrics.File == "" {
		return nil
	}
	if err := current.metrics.WriteFile(current.cfg.Metrics.File); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	current.log.Debug().Str("file", current.cfg.Metrics.File).Msg("metrics written")

	return nil
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := bench.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if flags.Changed("pretty") {
		cfg.Logging.Pretty = flagPretty
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = flagMetricsFile
	}
	if flags.Changed("algos") {
		cfg.Algorithms = flagAlgos
	}
	if flags.Changed("repeat") {
		cfg.Repeat = flagRepeat
	}
	if flags.Changed("parallelism") {
		cfg.Parallelism = flagParallelism
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		log:     log.NewLogger(cfg),
		metrics: bench.NewMetrics(),
	}, nil
}

func (s *session) runner() (*bench.Runner, error) {
	return bench.NewRunner(s.cfg, bench.WithLogger(s.log), bench.WithMetrics(s.metrics))
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
