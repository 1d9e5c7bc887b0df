package mapping

import (
	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	"github.com/taxtrackng/taxtrack_backend/internal/models"
)

// ToModelTransaction converts a domain transaction to its database model.
// The owner is the creating user; the CLI store uses a fixed local owner.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		OwnerID:       d.CreatedBy,
		Date:          d.Date,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Details:       d.Details,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainTransaction converts a database model to a domain transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          m.Date,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Details:       m.Details,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainTransactionSlice converts a slice of database models.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
