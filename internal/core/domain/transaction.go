package domain

import "github.com/shopspring/decimal"

// TransactionType classifies a ledger entry by the tax it records.
type TransactionType string

const (
	PAYE        TransactionType = "PAYE"
	VAT         TransactionType = "VAT"
	Consumption TransactionType = "CONSUMPTION"
)

// IsValid reports whether t is one of the three known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case PAYE, VAT, Consumption:
		return true
	}
	return false
}

// DateLayout is the calendar-date format used on every transaction.
const DateLayout = "2006-01-02"

// DetailsPlaceholder substitutes missing or too-short transaction details.
const DetailsPlaceholder = "Untitled entry"

// Transaction is the ledger's unit of record.
// Amount is always non-negative and stored with 2 decimal places.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID), never reused
	Date          string          `json:"date"`          // Calendar date, DateLayout
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Details       string          `json:"details"`
	AuditFields
}

// LedgerSummary aggregates transaction amounts by type over the full ledger.
type LedgerSummary struct {
	PAYE        decimal.Decimal `json:"paye"`
	VAT         decimal.Decimal `json:"vat"`
	Consumption decimal.Decimal `json:"consumption"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}
