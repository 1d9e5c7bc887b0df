package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/core/services"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
	"github.com/taxtrackng/taxtrack_backend/internal/repositories/database/sqlite"
)

const currencySymbol = "₦"

// openLedger opens the local store and wires the ledger service over it.
// Callers must Close the returned store.
func openLedger() (portssvc.LedgerSvcFacade, *sqlite.TransactionStore, error) {
	path, err := ledgerDBPath()
	if err != nil {
		return nil, nil, err
	}
	store, err := sqlite.NewTransactionStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger at %s: %w", path, err)
	}
	return services.NewLedgerService(store, currencySymbol), store, nil
}

func addCmd() *cobra.Command {
	var (
		txnType string
		date    string
		details string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Append a transaction to the ledger",
		Long: `Add records one transaction. The amount is in naira and must be
non-negative; the date defaults to today.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			ledger, store, err := openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := ledger.CreateTransaction(cmd.Context(), sqlite.LocalOwnerID, dto.CreateTransactionRequest{
				Date:    date,
				Type:    txnType,
				Amount:  amount,
				Details: details,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s %s%s (%s) on %s\n",
				txn.Type, currencySymbol, txn.Amount.StringFixed(2), txn.Details, txn.Date)
			return nil
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", "CONSUMPTION", "transaction type (PAYE, VAT or CONSUMPTION)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&details, "details", "m", "", "free-text description")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the ledger in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, store, err := openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			txns, err := ledger.ListTransactions(cmd.Context(), sqlite.LocalOwnerID)
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Println("Ledger is empty.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "DATE\tTYPE\tAMOUNT (%s)\tDETAILS\n", currencySymbol)
			for _, txn := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", txn.Date, txn.Type, txn.Amount.StringFixed(2), txn.Details)
			}
			return w.Flush()
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Aggregate ledger totals by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, store, err := openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			s, err := ledger.GetSummary(cmd.Context(), sqlite.LocalOwnerID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "PAYE\t%s%s\n", currencySymbol, s.PAYE.StringFixed(2))
			fmt.Fprintf(w, "VAT\t%s%s\n", currencySymbol, s.VAT.StringFixed(2))
			fmt.Fprintf(w, "Consumption\t%s%s\n", currencySymbol, s.Consumption.StringFixed(2))
			fmt.Fprintf(w, "Total\t%s%s\n", currencySymbol, s.Total.StringFixed(2))
			fmt.Fprintf(w, "Entries\t%d\n", s.Count)
			return w.Flush()
		},
	}
}

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, store, err := openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			csv, err := ledger.ExportCSV(cmd.Context(), sqlite.LocalOwnerID)
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Print(csv)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(csv), 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Printf("Exported ledger to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to file instead of stdout")

	return cmd
}
