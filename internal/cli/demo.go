package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/leaderboard/internal/model"
)

// sampleEntries is the fixed data set shown by the demo command
var sampleEntries = []model.Entry{
	{Player: "Alice", Score: 1200},
	{Player: "Bob", Score: 950},
	{Player: "Charlie", Score: 1500},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Rank a fixed sample of players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := buildRegistry(sampleEntries)

			out, err := newOutput(cmd)
			if err != nil {
				return err
			}
			return out.PrintRanking(registry.Ranking())
		},
	}
}
