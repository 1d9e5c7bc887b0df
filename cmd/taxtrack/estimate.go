package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	"github.com/taxtrackng/taxtrack_backend/internal/core/tax"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
	"github.com/taxtrackng/taxtrack_backend/internal/repositories/database/sqlite"
)

func payeCmd() *cobra.Command {
	var (
		pension string
		nhf     string
		other   string
	)

	cmd := &cobra.Command{
		Use:   "paye <annual-gross>",
		Short: "Estimate annual and monthly PAYE",
		Long: `Paye applies the consolidated relief allowance and the progressive
band schedule to a gross annual income. Pension, NHF and other reliefs
are deducted before the bands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid gross income %q: %w", args[0], err)
			}

			reliefs := tax.Reliefs{}
			if reliefs.Pension, err = parseReliefFlag("pension", pension); err != nil {
				return err
			}
			if reliefs.NHF, err = parseReliefFlag("nhf", nhf); err != nil {
				return err
			}
			if reliefs.Other, err = parseReliefFlag("other", other); err != nil {
				return err
			}

			a := tax.CalculatePAYE(gross, reliefs)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Gross income\t%s%s\n", currencySymbol, a.GrossIncome.StringFixed(2))
			fmt.Fprintf(w, "Total reliefs\t%s%s\n", currencySymbol, a.TotalReliefs.StringFixed(2))
			fmt.Fprintf(w, "Taxable income\t%s%s\n", currencySymbol, a.TaxableIncome.StringFixed(2))
			fmt.Fprintf(w, "Annual PAYE\t%s%s\n", currencySymbol, a.AnnualTax.StringFixed(2))
			fmt.Fprintf(w, "Monthly PAYE\t%s%s\n", currencySymbol, a.MonthlyTax.StringFixed(2))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&pension, "pension", "0", "annual pension contribution")
	cmd.Flags().StringVar(&nhf, "nhf", "0", "annual National Housing Fund contribution")
	cmd.Flags().StringVar(&other, "other", "0", "other allowable reliefs")

	return cmd
}

func vatCmd() *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "vat <base-amount>",
		Short: "Estimate VAT at the standard 7.5% rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid base amount %q: %w", args[0], err)
			}

			vat := tax.CalculateVAT(base)
			fmt.Printf("VAT on %s%s: %s%s\n",
				currencySymbol, base.StringFixed(2), currencySymbol, vat.StringFixed(2))

			if !record {
				return nil
			}

			ledger, store, err := openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := ledger.CreateTransaction(cmd.Context(), sqlite.LocalOwnerID, dto.CreateTransactionRequest{
				Type:    string(domain.VAT),
				Amount:  vat,
				Details: fmt.Sprintf("VAT on %s", base.StringFixed(2)),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Recorded VAT entry %s\n", txn.TransactionID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "also append the VAT amount to the ledger")

	return cmd
}

func parseReliefFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s value %q: %w", name, value, err)
	}
	return d, nil
}
