package services

import (
	"context"
	"io"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
)

// CSVImportResult reports committed transactions and silently-skipped rows.
type CSVImportResult struct {
	Imported []domain.Transaction
	Skipped  int
}

// CSVImportSvcFacade parses delimited text into VAT transactions and commits
// them directly to the ledger, without a review stage.
type CSVImportSvcFacade interface {
	ImportCSV(ctx context.Context, ownerID string, r io.Reader) (CSVImportResult, error)
}
