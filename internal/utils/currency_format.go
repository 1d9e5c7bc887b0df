package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
)

// FormatAmount formats a monetary amount with the ledger's 2-decimal precision.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatLedgerCSV renders a transaction list in the export layout:
// a header row naming the currency symbol, then one quoted-details row per
// transaction in ledger order.
func FormatLedgerCSV(txns []domain.Transaction, currencySymbol string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Date,Type,Amount (%s),Details\n", currencySymbol)
	for i := range txns {
		details := strings.ReplaceAll(txns[i].Details, `"`, `""`)
		fmt.Fprintf(&b, "%s,%s,%s,\"%s\"\n", txns[i].Date, txns[i].Type, FormatAmount(txns[i].Amount), details)
	}
	return b.String()
}
