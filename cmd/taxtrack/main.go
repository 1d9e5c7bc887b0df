// taxtrack is the offline companion CLI. It keeps the ledger in a local
// SQLite file and talks to the same recognition engine as the backend, so
// receipts can be scanned and taxes tracked without an account.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	dbPath  string
	rootCmd = &cobra.Command{
		Use:   "taxtrack",
		Short: "Personal Nigerian tax tracker",
		Long: `taxtrack keeps a local ledger of PAYE, VAT and consumption entries,
estimates taxes with the statutory calculators, and extracts amounts
from receipt photos.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "ledger database file (default: $HOME/.taxtrack/ledger.db)")

	rootCmd.AddCommand(payeCmd())
	rootCmd.AddCommand(vatCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(importCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ledgerDBPath resolves the database file location.
func ledgerDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".taxtrack", "ledger.db"), nil
}
