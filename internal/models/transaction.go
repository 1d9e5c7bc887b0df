package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database-facing shape of a ledger entry.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	OwnerID       string          `db:"owner_id"`
	Date          string          `db:"txn_date"`
	Type          string          `db:"txn_type"`
	Amount        decimal.Decimal `db:"amount"`
	Details       string          `db:"details"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
	LastUpdatedBy string          `db:"last_updated_by"`
}
