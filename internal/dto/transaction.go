package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
)

// CreateTransactionRequest is the payload for appending a ledger entry.
// Date is optional and defaults to the creation date.
type CreateTransactionRequest struct {
	Date    string          `json:"date" binding:"omitempty,isodate"`
	Type    string          `json:"type" binding:"required,oneof=PAYE VAT CONSUMPTION"`
	Amount  decimal.Decimal `json:"amount"`
	Details string          `json:"details"`
}

// TransactionResponse is the public view of a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Details       string          `json:"details"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps the full ledger listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// SummaryResponse is the per-type aggregation of the ledger.
type SummaryResponse struct {
	PAYE        decimal.Decimal `json:"paye"`
	VAT         decimal.Decimal `json:"vat"`
	Consumption decimal.Decimal `json:"consumption"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}

// ToTransactionResponse converts a domain transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Details:       txn.Details,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}

// ToSummaryResponse converts a domain ledger summary.
func ToSummaryResponse(s domain.LedgerSummary) SummaryResponse {
	return SummaryResponse{
		PAYE:        s.PAYE,
		VAT:         s.VAT,
		Consumption: s.Consumption,
		Total:       s.Total,
		Count:       s.Count,
	}
}
