package services

import (
	"context"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

// LedgerReaderSvc defines read operations over the transaction ledger.
type LedgerReaderSvc interface {
	// ListTransactions returns the owner's transactions in insertion order.
	// The returned slice is a defensive copy.
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)

	// GetSummary aggregates the owner's transaction amounts by type.
	GetSummary(ctx context.Context, ownerID string) (domain.LedgerSummary, error)

	// ExportCSV renders the owner's full ledger in the export format.
	ExportCSV(ctx context.Context, ownerID string) (string, error)
}

// LedgerWriterSvc defines write operations over the transaction ledger.
type LedgerWriterSvc interface {
	// CreateTransaction validates, assigns id/createdAt, appends and persists
	// a new transaction, returning the stored record.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// LedgerSvcFacade combines the ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
