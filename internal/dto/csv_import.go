package dto

import "github.com/taxtrackng/taxtrack_backend/internal/core/domain"

// CSVImportResponse reports the outcome of one CSV file import.
type CSVImportResponse struct {
	Imported     []TransactionResponse `json:"imported"`
	SkippedRows  int                   `json:"skippedRows"`
	ImportedRows int                   `json:"importedRows"`
}

// ToCSVImportResponse converts committed transactions plus a skip count.
func ToCSVImportResponse(txns []domain.Transaction, skipped int) CSVImportResponse {
	return CSVImportResponse{
		Imported:     ToListTransactionsResponse(txns).Transactions,
		SkippedRows:  skipped,
		ImportedRows: len(txns),
	}
}
