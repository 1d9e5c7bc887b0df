package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taxtrackng/taxtrack_backend/internal/core/services"
	"github.com/taxtrackng/taxtrack_backend/internal/repositories/database/sqlite"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import purchase rows from a CSV file",
		Long: `Import reads date/amount/details rows, converts each amount to its
7.5% VAT portion and commits the results to the ledger. Rows without a
usable positive amount are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			ledger, store, err := openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			importer := services.NewCSVImportService(ledger)
			result, err := importer.ImportCSV(cmd.Context(), sqlite.LocalOwnerID, f)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d row(s), skipped %d.\n", len(result.Imported), result.Skipped)
			return nil
		},
	}
}
