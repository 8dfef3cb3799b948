package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/leaderboard/internal/display"
	"github.com/mcoot/leaderboard/internal/leaderboard"
	"github.com/mcoot/leaderboard/internal/model"
)

func newRankCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "rank [NAME=SCORE...]",
		Short: "Record scores and print the ranked listing",
		Long: `Record each NAME=SCORE pair in order and print every player, highest
score first, followed by the top player. A later pair for the same name
replaces the earlier score.`,
		Example: `  leaderboard rank Alice=1200 Bob=950 Charlie=1500
  printf 'Alice=3\nBob=4\n' | leaderboard rank --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := collectEntries(cmd, args, fromStdin)
			if err != nil {
				return err
			}
			registry := buildRegistry(entries)

			out, err := newOutput(cmd)
			if err != nil {
				return err
			}
			return out.PrintRanking(registry.Ranking())
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Also read NAME=SCORE lines from stdin")

	return cmd
}

func newTopCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "top [NAME=SCORE...]",
		Short: "Record scores and print only the top player",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := collectEntries(cmd, args, fromStdin)
			if err != nil {
				return err
			}
			registry := buildRegistry(entries)

			out, err := newOutput(cmd)
			if err != nil {
				return err
			}

			var top *string
			if player, ok := registry.TopPlayer(); ok {
				top = &player
			}
			return out.PrintTopPlayer(top)
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Also read NAME=SCORE lines from stdin")

	return cmd
}

// collectEntries parses args, then stdin lines when requested
func collectEntries(cmd *cobra.Command, args []string, fromStdin bool) ([]model.Entry, error) {
	entries, err := ParseEntries(args)
	if err != nil {
		return nil, err
	}
	if !fromStdin {
		return entries, nil
	}

	more, err := ReadEntries(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	return append(entries, more...), nil
}

func buildRegistry(entries []model.Entry) *leaderboard.Registry {
	registry := leaderboard.New(logger)
	for _, e := range entries {
		registry.Record(e.Player, e.Score)
	}
	logger.Debug("registry built", slog.Int("players", registry.Len()), slog.Int("entries", len(entries)))
	return registry
}

func newOutput(cmd *cobra.Command) (*display.Output, error) {
	return display.New(cfg.Output, cmd.OutOrStdout())
}
