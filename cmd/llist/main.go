// llist is a command-line front end for the linkedlist library: an
// interactive REPL, one-shot list operations and a benchmark.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phroun/linkedlist"
	"github.com/phroun/linkedlist/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Set up by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "llist",
	Short: "Singly-linked list playground",
	Long: `llist drives the linkedlist library from the command line.

Lists live in an arena of generation-checked nodes. Use 'repl' for an
interactive session, 'eval' for a single operation, or 'bench' to time
the core operations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		level, _ := cfg.LogLevel()
		if verbose {
			level = zapcore.DebugLevel
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive list session",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

var evalCmd = &cobra.Command{
	Use:   "eval <op> [values...]",
	Short: "Apply one operation to a list of integers",
	Long: `Builds a list from the given values and applies one operation.

Operations:
  sort       print the sorted list
  reverse    print the reversed list
  max, min   print the largest or smallest value
  length     print the number of values
  count <v>  print how often v occurs in the remaining values

Example:
  llist eval sort 5 3 5 1 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time list operations at the configured sizes",
	Args:  cobra.NoArgs,
	RunE:  runBenchmarks,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "llist.yaml", "path to YAML config")

	rootCmd.AddCommand(replCmd, evalCmd, benchCmd)
}

// newArena creates an arena from the loaded configuration.
func newArena() (*linkedlist.Arena, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	a, err := linkedlist.New(cfg.ArenaOptions(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create arena: %w", err)
	}
	return a, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
