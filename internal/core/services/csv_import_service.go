package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxtrackng/taxtrack_backend/internal/apperrors"
	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/core/tax"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

// csvImportService converts bank-statement-like CSV rows into VAT
// transactions and commits them straight to the ledger.
type csvImportService struct {
	BaseService
	ledger portssvc.LedgerWriterSvc
}

// NewCSVImportService creates the CSV import service.
func NewCSVImportService(ledger portssvc.LedgerWriterSvc) portssvc.CSVImportSvcFacade {
	return &csvImportService{ledger: ledger}
}

var _ portssvc.CSVImportSvcFacade = (*csvImportService)(nil)

// ImportCSV parses each row for one positive amount and a description. Rows
// without a positive amount are skipped silently; every imported row becomes
// a VAT transaction with the computed tax on the row amount.
func (s *csvImportService) ImportCSV(ctx context.Context, ownerID string, r io.Reader) (portssvc.CSVImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return portssvc.CSVImportResult{}, fmt.Errorf("failed to read csv input: %w", err)
	}

	rows := splitRows(string(raw))
	if len(rows) == 0 {
		return portssvc.CSVImportResult{}, fmt.Errorf("csv file is empty: %w", apperrors.ErrValidation)
	}

	// A header row is detected on the first line only, by column-name
	// keywords rather than position.
	first := strings.ToLower(rows[0])
	if strings.Contains(first, "date") || strings.Contains(first, "amount") {
		rows = rows[1:]
	}

	var (
		result     portssvc.CSVImportResult
		commitErrs []error
	)
	for _, row := range rows {
		amount, details, ok := parseImportRow(row)
		if !ok {
			result.Skipped++
			continue
		}

		vatAmount := tax.CalculateVAT(amount)
		txn, err := s.ledger.CreateTransaction(ctx, ownerID, dto.CreateTransactionRequest{
			Type:    string(domain.VAT),
			Amount:  vatAmount,
			Details: fmt.Sprintf("%s (VAT on %s)", details, amount.StringFixed(2)),
		})
		if err != nil {
			commitErrs = append(commitErrs, fmt.Errorf("row %q: %w", row, err))
			continue
		}
		result.Imported = append(result.Imported, *txn)
	}

	s.LogInfo(ctx, "CSV import finished",
		slog.Int("imported", len(result.Imported)),
		slog.Int("skipped", result.Skipped),
	)
	return result, errors.Join(commitErrs...)
}

// splitRows breaks the input on newlines and drops blank rows.
func splitRows(input string) []string {
	var rows []string
	for _, row := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(row) == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// parseImportRow extracts the row's amount and description. The amount is
// the first field that parses, in full, as a positive number; the
// description is the first remaining non-numeric field longer than 2
// characters. A row with no positive amount is not importable.
func parseImportRow(row string) (decimal.Decimal, string, bool) {
	fields := strings.Split(row, ",")

	var (
		amount    decimal.Decimal
		amountIdx = -1
	)
	for i, field := range fields {
		value, err := parseAmountField(field)
		if err != nil {
			continue
		}
		if value.IsPositive() {
			amount = value
			amountIdx = i
			break
		}
	}
	if amountIdx < 0 {
		return decimal.Decimal{}, "", false
	}

	details := domain.DetailsPlaceholder
	for i, field := range fields {
		if i == amountIdx {
			continue
		}
		cleaned := trimField(field)
		if _, err := parseAmountField(field); err == nil {
			continue
		}
		if len(cleaned) > 2 {
			details = cleaned
			break
		}
	}
	return amount, details, true
}

// amountFieldCleaner drops thousands separators and currency symbols so
// values like "₦1,200" parse as numbers.
var amountFieldCleaner = strings.NewReplacer(",", "", "₦", "", "$", "")

// parseAmountField parses one field as a monetary value.
func parseAmountField(field string) (decimal.Decimal, error) {
	return decimal.NewFromString(amountFieldCleaner.Replace(trimField(field)))
}

// trimField strips surrounding whitespace and quotes from a naive CSV field.
func trimField(field string) string {
	return strings.Trim(strings.TrimSpace(field), `"`)
}
