package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taxtrackng/taxtrack_backend/internal/apperrors"
	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portsrepo "github.com/taxtrackng/taxtrack_backend/internal/core/ports/repositories"
	"github.com/taxtrackng/taxtrack_backend/internal/models"
	"github.com/taxtrackng/taxtrack_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, owner_id, txn_date, txn_type, amount, details, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Date,
		m.Type,
		m.Amount,
		m.Details,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, owner_id, txn_date, txn_type, amount, details, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	var m models.Transaction
	err := r.db.QueryRow(ctx, query, transactionID, ownerID).Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.Date,
		&m.Type,
		&m.Amount,
		&m.Details,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	// created_at ties are broken by id so the order stays stable across reads.
	query := `
		SELECT transaction_id, owner_id, txn_date, txn_type, amount, details, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE owner_id = $1
		ORDER BY created_at ASC, transaction_id ASC;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.OwnerID,
			&m.Date,
			&m.Type,
			&m.Amount,
			&m.Details,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}
