// Package cli provides the terminal shell for the banking ledger.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/bolt"
	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/jsonfile"
	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/repo_interfaces"
	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/sqlite"
	"github.com/ed1thub/Banking-CLI-app/src/internal/config"
	"github.com/ed1thub/Banking-CLI-app/src/internal/logger"
	"github.com/ed1thub/Banking-CLI-app/src/internal/usecase/service_interfaces"
	"github.com/ed1thub/Banking-CLI-app/src/internal/usecase/services"
)

// rootCmd represents the base command when called without any subcommands.
// Running it with no subcommand starts the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "bankledger",
	Short: "Personal banking ledger",
	Long: `bankledger manages customers, bank accounts, and a deposit/withdrawal
transaction log, persisted to disk between runs.

Accounts come in three kinds: basic accounts that can never go negative,
savings accounts that accrue interest, and current accounts that may
overdraw up to a limit.

Run without arguments for the interactive menu, or use the subcommands
for scripting:
  bankledger create-customer --name "Alice" --address "123 St" --contact "555-0100"
  bankledger open-account --customer C0001 --type savings --deposit 100
  bankledger deposit A000001 50
  bankledger balance A000001`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
			return runMenu(ctx, svc, cmd.InOrStdin(), cmd.OutOrStdout())
		})
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(createCustomerCmd)
	rootCmd.AddCommand(openAccountCmd)
	rootCmd.AddCommand(getAccountCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(accrueInterestCmd)
}

// withLedger builds the full stack (config, logger, store, engine), loads
// persisted state, runs fn, then flushes on normal completion. The store
// is closed either way.
func withLedger(fn func(ctx context.Context, svc service_interfaces.LedgerService) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.SetLevel(cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := services.NewLedgerService(store)
	svc.WithSavingsRate(cfg.SavingsRate)
	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	if err := fn(ctx, svc); err != nil {
		return err
	}

	if err := svc.Flush(ctx); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}

	return nil
}

func openStore(cfg config.Config) (repo_interfaces.CollectionStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.New(filepath.Join(cfg.DataDir, "ledger.sqlite"))
	case config.BackendBolt:
		return bolt.New(filepath.Join(cfg.DataDir, "ledger.bolt"))
	default:
		return jsonfile.New(cfg.DataDir)
	}
}
