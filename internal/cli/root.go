package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/leaderboard/internal/display"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank players by score",
		Long: `leaderboard records player scores and prints them highest first,
followed by the top player.

Each player keeps only their most recent score. Players with equal scores
are listed in the order they were first recorded.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Reject a bad format before any scores are read
			if _, err := display.New(cfg.Output, cmd.OutOrStdout()); err != nil {
				return err
			}
			logger = cfg.NewLogger(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: LEADERBOARD_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (env: LEADERBOARD_VERBOSE)")

	// Add subcommands
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newTopCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
