// Package cli provides the command-line interface for the paper trading ledger.
package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"paperdesk/internal/config"
	"paperdesk/internal/fees"
	"paperdesk/internal/ledger"
	"paperdesk/internal/logging"
	"paperdesk/internal/store"
	"paperdesk/internal/stream"
)

// Version information
const Version = "0.1.0"

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Account *ledger.Account
	Hub     *stream.Hub
	Store   store.LedgerStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Hub:    stream.NewHub(),
	}

	ledgerStore, err := store.NewSQLiteStore(cfg.Store.Path, store.SQLiteOptions{
		Key:    cfg.Store.Key,
		MaxAge: time.Duration(cfg.Store.StalenessDays) * 24 * time.Hour,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open ledger store, state will not be saved")
	} else {
		app.Store = ledgerStore
	}

	schedule := fees.Schedule{
		CommissionRate:  cfg.Fees.CommissionRate,
		MinCommission:   cfg.Fees.MinCommission,
		TransferFeeRate: cfg.Fees.TransferFeeRate,
		StampDutyRate:   cfg.Fees.StampDutyRate,
	}

	app.Account = ledger.Open(context.Background(), ledger.Config{
		InitialCapital: cfg.Account.InitialCapital,
		Currency:       cfg.Account.Currency,
		Fees:           &schedule,
		Store:          app.Store,
		Hub:            app.Hub,
		Logger:         logger,
	})

	rootCmd := &cobra.Command{
		Use:   "paperdesk",
		Short: "paperdesk - simulated brokerage ledger",
		Long: `paperdesk is a local paper-trading ledger for a retail market dashboard.

It tracks cash, positions, and fills for one simulated account, marks
positions to market on price ticks, and persists state across sessions.

Use 'paperdesk help <command>' for more information about a command.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Hub.Stop()
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/paperdesk)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addTradeCommands(rootCmd, app)
	addViewCommands(rootCmd, app)
	addAdminCommands(rootCmd, app)

	return rootCmd
}
