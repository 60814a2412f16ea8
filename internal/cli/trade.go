package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"paperdesk/internal/display"
	"paperdesk/internal/models"
)

// addTradeCommands registers the order and tick commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newBuyCmd(app))
	rootCmd.AddCommand(newSellCmd(app))
	rootCmd.AddCommand(newTickCmd(app))
}

func newBuyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "buy SYMBOL QUANTITY PRICE",
		Short: "Buy shares in the simulated account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, app, models.SideBuy, args)
		},
	}
}

func newSellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sell SYMBOL QUANTITY PRICE",
		Short: "Sell shares from the simulated account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, app, models.SideSell, args)
		},
	}
}

func runOrder(cmd *cobra.Command, app *App, side models.Side, args []string) error {
	symbol := args[0]

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", args[1], err)
	}
	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", args[2], err)
	}

	result, err := app.Account.ExecuteOrder(cmd.Context(), symbol, side, price, quantity)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s @ %.2f  fee %.2f  cash %s\n",
		side, quantity, symbol, price, result.Trade.Fee, display.FormatCNY(result.CashAfter))
	if side == models.SideSell {
		fmt.Fprintf(cmd.OutOrStdout(), "realized P&L %s\n", display.FormatPnL(result.Trade.RealizedPnL))
	}
	if result.SaveErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: ledger not saved: %v\n", result.SaveErr)
	}
	return nil
}

func newTickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tick SYMBOL PRICE",
		Short: "Mark a held symbol to market at the latest price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := args[0]
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[1], err)
			}

			if err := app.Account.UpdateMarketPrice(cmd.Context(), symbol, price); err != nil {
				return err
			}

			snap := app.Account.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "%s @ %.2f  total asset %s\n",
				symbol, price, display.FormatCompactCNY(snap.TotalAsset))
			return nil
		},
	}
}
