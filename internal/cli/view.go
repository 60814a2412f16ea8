package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"paperdesk/internal/display"
	"paperdesk/internal/export"
)

// addViewCommands registers the read-only projection commands.
func addViewCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newDashboardCmd(app))
	rootCmd.AddCommand(newPositionsCmd(app))
	rootCmd.AddCommand(newHistoryCmd(app))
}

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the account dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Account.Snapshot()

			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				return printJSON(cmd, snap)
			}

			trades, _ := cmd.Flags().GetInt("trades")
			fmt.Fprint(cmd.OutOrStdout(), display.RenderDashboard(snap, trades))
			return nil
		},
	}
	cmd.Flags().Int("trades", 5, "number of recent trades to show")
	return cmd
}

func newPositionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "List open positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Account.Snapshot()

			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				return printJSON(cmd, snap.Positions)
			}
			fmt.Fprint(cmd.OutOrStdout(), display.RenderPositions(snap.Positions))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete SYMBOL",
		Short: "Remove a position outright",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Account.DeletePosition(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted position %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Drop any zero-quantity positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Account.PurgeZeroPositions(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "purged zero-quantity positions")
			return nil
		},
	})

	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show trade history, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Account.Snapshot()

			if path, _ := cmd.Flags().GetString("export"); path != "" {
				if err := export.WriteTradesFile(path, snap.History); err != nil {
					return fmt.Errorf("exporting history: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d trades to %s\n", len(snap.History), path)
				return nil
			}

			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				return printJSON(cmd, snap.History)
			}

			limit, _ := cmd.Flags().GetInt("limit")
			fmt.Fprint(cmd.OutOrStdout(), display.RenderTrades(snap.History, limit))
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum trades to show (0 for all)")
	cmd.Flags().String("export", "", "write the full history to a CSV file")
	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
