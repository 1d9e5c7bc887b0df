package services

import (
	"context"
	"io"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

// RecognitionProgress is one progress report from the recognition engine.
// Progress runs from 0 to 1; Status is a short human-readable phase label.
type RecognitionProgress struct {
	Status   string
	Progress float64
}

// ProgressFunc receives recognition progress updates. It may be invoked many
// times before the final result and must tolerate being nil at call sites.
type ProgressFunc func(RecognitionProgress)

// ReceiptRecognizer is the external image-to-text engine, treated as an
// opaque black box returning a single text blob per image.
type ReceiptRecognizer interface {
	// Recognize extracts raw text from one image. The call may take seconds;
	// onProgress, when non-nil, receives partial progress along the way.
	Recognize(ctx context.Context, image io.Reader, fileName string, onProgress ProgressFunc) (string, error)
}

// ReceiptFile is one image handed to the extraction pipeline.
type ReceiptFile struct {
	Name   string
	Reader io.Reader
}

// ExtractionSvcFacade is the receipt-to-transaction pipeline: it converts
// recognized text into staged candidate lines, lets the caller edit them, and
// commits the selected subset to the ledger on confirm.
type ExtractionSvcFacade interface {
	// ExtractReceipts runs recognition over a batch of files sequentially,
	// isolating per-file failures, and stages the resulting candidates.
	ExtractReceipts(ctx context.Context, ownerID string, files []ReceiptFile, onProgress ProgressFunc) (*domain.ExtractionRun, error)

	// GetRun retrieves a staged run owned by ownerID.
	GetRun(ctx context.Context, ownerID string, runID string) (*domain.ExtractionRun, error)

	// UpdateLine edits a staged candidate line's type, amount, details or
	// selection state.
	UpdateLine(ctx context.Context, ownerID string, runID string, lineID string, req dto.UpdateCandidateRequest) (*domain.CandidateLine, error)

	// ConfirmRun commits every still-selected line as exactly one ledger
	// transaction (VAT lines pass through the VAT calculator first) and then
	// drops the run unconditionally.
	ConfirmRun(ctx context.Context, ownerID string, runID string) ([]domain.Transaction, error)
}
