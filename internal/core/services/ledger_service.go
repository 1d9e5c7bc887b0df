package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taxtrackng/taxtrack_backend/internal/apperrors"
	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portsrepo "github.com/taxtrackng/taxtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
	"github.com/taxtrackng/taxtrack_backend/internal/utils"
)

// ledgerService owns the transaction ledger. No other component mutates the
// stored list directly.
type ledgerService struct {
	BaseService
	txnRepo        portsrepo.TransactionRepository
	currencySymbol string
}

// NewLedgerService creates the ledger service over a transaction repository.
func NewLedgerService(txnRepo portsrepo.TransactionRepository, currencySymbol string) portssvc.LedgerSvcFacade {
	return &ledgerService{txnRepo: txnRepo, currencySymbol: currencySymbol}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateTransaction validates the request, assigns id and timestamps, rounds
// the amount to 2 decimal places and persists the new entry.
func (s *ledgerService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("unknown transaction type %q: %w", req.Type, apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must be non-negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()

	date := req.Date
	if date == "" {
		date = now.Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	details := strings.TrimSpace(req.Details)
	if len(details) < 3 {
		details = domain.DetailsPlaceholder
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Type:          txnType,
		Amount:        req.Amount.Round(2),
		Details:       details,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction appended to ledger",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
	)
	return &txn, nil
}

// ListTransactions returns the owner's ledger in insertion order.
func (s *ledgerService) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// GetSummary sums amounts grouped by type over the full ledger.
func (s *ledgerService) GetSummary(ctx context.Context, ownerID string) (domain.LedgerSummary, error) {
	txns, err := s.txnRepo.FindTransactions(ctx, ownerID)
	if err != nil {
		return domain.LedgerSummary{}, fmt.Errorf("failed to summarize ledger: %w", err)
	}

	summary := domain.LedgerSummary{
		PAYE:        decimal.Zero,
		VAT:         decimal.Zero,
		Consumption: decimal.Zero,
		Total:       decimal.Zero,
		Count:       len(txns),
	}
	for i := range txns {
		switch txns[i].Type {
		case domain.PAYE:
			summary.PAYE = summary.PAYE.Add(txns[i].Amount)
		case domain.VAT:
			summary.VAT = summary.VAT.Add(txns[i].Amount)
		case domain.Consumption:
			summary.Consumption = summary.Consumption.Add(txns[i].Amount)
		}
	}
	summary.Total = summary.PAYE.Add(summary.VAT).Add(summary.Consumption)
	return summary, nil
}

// ExportCSV renders the full ledger in the export layout.
func (s *ledgerService) ExportCSV(ctx context.Context, ownerID string) (string, error) {
	txns, err := s.txnRepo.FindTransactions(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("failed to export ledger: %w", err)
	}
	return utils.FormatLedgerCSV(txns, s.currencySymbol), nil
}
