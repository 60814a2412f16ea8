package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperdesk/internal/display"
)

// addAdminCommands registers the destructive account controls.
func addAdminCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newResetCmd(app))
}

func newResetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the account to fresh zero-history state",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return fmt.Errorf("reset discards all positions and history; re-run with --yes to confirm")
			}

			capital, _ := cmd.Flags().GetFloat64("capital")
			currency, _ := cmd.Flags().GetString("currency")
			if capital == 0 {
				capital = app.Config.Account.InitialCapital
			}
			if currency == "" {
				currency = app.Config.Account.Currency
			}

			if err := app.Account.Reset(cmd.Context(), capital, currency); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "account reset: %s %s\n",
				display.FormatCNY(capital), currency)
			return nil
		},
	}
	cmd.Flags().Float64("capital", 0, "initial capital (default from config)")
	cmd.Flags().String("currency", "", "account currency (default from config)")
	cmd.Flags().Bool("yes", false, "confirm the reset")
	return cmd
}
