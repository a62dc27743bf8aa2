// Command sortviz runs the step-generating sort engine from the terminal:
// compute and pretty-print traces, save and replay trace files, serve the
// engine over HTTP, and list the demonstration cycle.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lanrat/sortviz/server"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sortviz",
	Short: "sortviz - step traces for sort visualization",
	Long: `sortviz computes the ordered sequence of moves a sorting algorithm
performs (compares, swaps, slides, holds, joins) so an animation layer can
replay them. The engine sorts a private copy of the input and returns the
trace, never the sorted data.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
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

var serveAddr string

// serveCmd runs the HTTP step server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve traces over HTTP and websocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(logger, nil).ListenAndServe(ctx, serveAddr)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(algorithmsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
