package repositories

import (
	"context"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction owned by ownerID.
	FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves all transactions owned by ownerID in
	// insertion order.
	FindTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions.
type TransactionWriter interface {
	// SaveTransaction appends a new transaction to the store.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepository combines the ledger persistence operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
