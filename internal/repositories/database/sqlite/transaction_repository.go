// Package sqlite backs the offline CLI with a single-file local store. It
// implements the same repository ports as the Postgres layer so the services
// run unchanged against either.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"github.com/taxtrackng/taxtrack_backend/internal/apperrors"
	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portsrepo "github.com/taxtrackng/taxtrack_backend/internal/core/ports/repositories"
	"github.com/taxtrackng/taxtrack_backend/internal/models"
	"github.com/taxtrackng/taxtrack_backend/internal/utils/mapping"
)

// LocalOwnerID identifies the single implicit user of the offline store.
const LocalOwnerID = "local"

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	transaction_id  TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	txn_date        TEXT NOT NULL,
	txn_type        TEXT NOT NULL,
	amount          TEXT NOT NULL,
	details         TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL,
	created_by      TEXT NOT NULL,
	last_updated_at TIMESTAMP NOT NULL,
	last_updated_by TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_owner ON transactions(owner_id, created_at);
`

// TransactionStore is a SQLite-backed transaction repository.
type TransactionStore struct {
	db *sql.DB
}

// NewTransactionStore opens (creating if needed) the local ledger database.
func NewTransactionStore(dbPath string) (*TransactionStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &TransactionStore{db: db}, nil
}

var _ portsrepo.TransactionRepository = (*TransactionStore)(nil)

// Close closes the database connection.
func (s *TransactionStore) Close() error {
	return s.db.Close()
}

func (s *TransactionStore) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (transaction_id, owner_id, txn_date, txn_type, amount, details, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.TransactionID,
		m.OwnerID,
		m.Date,
		m.Type,
		m.Amount.String(),
		m.Details,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (s *TransactionStore) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT transaction_id, owner_id, txn_date, txn_type, amount, details, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = ? AND owner_id = ?`,
		transactionID, ownerID,
	)

	m, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (s *TransactionStore) FindTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT transaction_id, owner_id, txn_date, txn_type, amount, details, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE owner_id = ?
		ORDER BY created_at ASC, transaction_id ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// scanTransaction reads one row; amounts are stored as decimal strings.
func scanTransaction(scan func(dest ...any) error) (models.Transaction, error) {
	var (
		m      models.Transaction
		amount string
	)
	if err := scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.Date,
		&m.Type,
		&amount,
		&m.Details,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return models.Transaction{}, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("stored amount %q is not a decimal: %w", amount, err)
	}
	m.Amount = parsed
	return m, nil
}
