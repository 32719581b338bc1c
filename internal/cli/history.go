package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ning0612/reclaim/internal/state"
)

func (a *App) newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past analysis runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := state.NewManager(a.cfg.StateDir)
			if err != nil {
				return fmt.Errorf("opening history store: %w", err)
			}
			defer manager.Close()

			records, err := manager.GetHistory(limit)
			if err != nil {
				return fmt.Errorf("reading history: %w", err)
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			return RenderHistory(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")

	return cmd
}
