package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taxtrackng/taxtrack_backend/internal/apperrors"
	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/core/tax"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

// Plausibility bounds for extracted amounts. Values outside this range are
// treated as noise (dates, phone numbers, receipt serials) and dropped.
var (
	minPlausibleAmount = decimal.NewFromInt(100)
	maxPlausibleAmount = decimal.NewFromInt(10_000_000)
)

// monetaryTokenRe matches monetary tokens in recognized text. The grouped
// alternative comes first so "12,500.00" wins over its bare "12" prefix.
var monetaryTokenRe = regexp.MustCompile(`\d{1,3}(?:,\d{2,3})+(?:\.\d{2})?|\d+(?:\.\d{2})?`)

// taxKeywords mark a text line as VAT-like rather than general consumption.
var taxKeywords = []string{"vat", "tax", "excise", "levy"}

var (
	nonAlphanumRe = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// maxDetailsLen caps derived candidate descriptions.
const maxDetailsLen = 50

// extractionService stages candidate lines between recognition and ledger
// commit. Runs live only in memory; a process restart discards them.
type extractionService struct {
	BaseService
	recognizer portssvc.ReceiptRecognizer
	ledger     portssvc.LedgerWriterSvc

	mu   sync.Mutex
	runs map[string]*domain.ExtractionRun
}

// NewExtractionService creates the receipt extraction pipeline service.
func NewExtractionService(recognizer portssvc.ReceiptRecognizer, ledger portssvc.LedgerWriterSvc) portssvc.ExtractionSvcFacade {
	return &extractionService{
		recognizer: recognizer,
		ledger:     ledger,
		runs:       make(map[string]*domain.ExtractionRun),
	}
}

var _ portssvc.ExtractionSvcFacade = (*extractionService)(nil)

// ExtractReceipts recognizes each file in order, parses the text into
// candidate lines and stages the run. A file that fails recognition records
// its error and the batch continues; the run fails only when no file yields
// any candidate at all.
func (s *extractionService) ExtractReceipts(ctx context.Context, ownerID string, files []portssvc.ReceiptFile, onProgress portssvc.ProgressFunc) (*domain.ExtractionRun, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files provided: %w", apperrors.ErrValidation)
	}

	run := &domain.ExtractionRun{
		RunID:     uuid.NewString(),
		OwnerID:   ownerID,
		Files:     make([]domain.FileResult, 0, len(files)),
		CreatedAt: time.Now(),
	}

	for i, file := range files {
		fileBase := float64(i) / float64(len(files))
		fileSpan := 1.0 / float64(len(files))

		report := func(p portssvc.RecognitionProgress) {
			if onProgress == nil {
				return
			}
			onProgress(portssvc.RecognitionProgress{
				Status:   fmt.Sprintf("%s: %s", file.Name, p.Status),
				Progress: fileBase + p.Progress*fileSpan,
			})
		}

		result := domain.FileResult{FileName: file.Name}

		text, err := s.recognizer.Recognize(ctx, file.Reader, file.Name, report)
		if err != nil {
			s.LogError(ctx, err, "Receipt recognition failed", slog.String("file", file.Name))
			result.Error = err.Error()
			run.Files = append(run.Files, result)
			continue
		}

		lines := parseCandidates(text, file.Name)
		for j := range lines {
			result.Candidates = append(result.Candidates, lines[j].LineID)
		}
		run.Lines = append(run.Lines, lines...)
		run.Files = append(run.Files, result)
	}

	if onProgress != nil {
		onProgress(portssvc.RecognitionProgress{Status: "done", Progress: 1})
	}

	if len(run.Lines) == 0 {
		return nil, fmt.Errorf("no amounts detected in any file: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	s.runs[run.RunID] = run
	s.mu.Unlock()

	s.LogInfo(ctx, "Extraction run staged",
		slog.String("run_id", run.RunID),
		slog.Int("files", len(run.Files)),
		slog.Int("candidates", len(run.Lines)),
	)
	return copyRun(run), nil
}

// GetRun returns a copy of a staged run owned by ownerID.
func (s *extractionService) GetRun(ctx context.Context, ownerID string, runID string) (*domain.ExtractionRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok || run.OwnerID != ownerID {
		return nil, fmt.Errorf("extraction run %s: %w", runID, apperrors.ErrNotFound)
	}
	return copyRun(run), nil
}

// UpdateLine applies the provided fields to a staged candidate line.
func (s *extractionService) UpdateLine(ctx context.Context, ownerID string, runID string, lineID string, req dto.UpdateCandidateRequest) (*domain.CandidateLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[runID]
	if !ok || run.OwnerID != ownerID {
		return nil, fmt.Errorf("extraction run %s: %w", runID, apperrors.ErrNotFound)
	}
	line := run.Line(lineID)
	if line == nil {
		return nil, fmt.Errorf("candidate line %s: %w", lineID, apperrors.ErrNotFound)
	}

	if req.Type != nil {
		txnType := domain.TransactionType(*req.Type)
		if !txnType.IsValid() {
			return nil, fmt.Errorf("unknown transaction type %q: %w", *req.Type, apperrors.ErrValidation)
		}
		line.Type = txnType
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("amount must be non-negative: %w", apperrors.ErrValidation)
		}
		line.Amount = req.Amount.Round(2)
	}
	if req.Details != nil {
		line.Details = cleanDetails(*req.Details)
	}
	if req.Selected != nil {
		line.Selected = *req.Selected
	}

	updated := *line
	return &updated, nil
}

// ConfirmRun commits every still-selected line to the ledger and drops the
// run. The run is removed before any commit so a second confirm can never
// double-book; partial commit failures are reported alongside the
// transactions that did go through.
func (s *extractionService) ConfirmRun(ctx context.Context, ownerID string, runID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	run, ok := s.runs[runID]
	if ok && run.OwnerID == ownerID {
		delete(s.runs, runID)
	}
	s.mu.Unlock()

	if !ok || run.OwnerID != ownerID {
		return nil, fmt.Errorf("extraction run %s: %w", runID, apperrors.ErrNotFound)
	}

	var (
		committed  []domain.Transaction
		commitErrs []error
	)
	for i := range run.Lines {
		line := &run.Lines[i]
		if !line.Selected {
			continue
		}

		amount := line.Amount
		details := line.Details
		if line.Type == domain.VAT {
			// VAT candidates carry the taxable base; the ledger records
			// the tax owed on it.
			amount = tax.CalculateVAT(line.Amount)
			details = fmt.Sprintf("%s (VAT on %s)", details, line.Amount.StringFixed(2))
		}

		txn, err := s.ledger.CreateTransaction(ctx, ownerID, dto.CreateTransactionRequest{
			Type:    string(line.Type),
			Amount:  amount,
			Details: details,
		})
		if err != nil {
			commitErrs = append(commitErrs, fmt.Errorf("line %s: %w", line.LineID, err))
			continue
		}
		committed = append(committed, *txn)
	}

	s.LogInfo(ctx, "Extraction run confirmed",
		slog.String("run_id", runID),
		slog.Int("committed", len(committed)),
		slog.Int("failed", len(commitErrs)),
	)
	return committed, errors.Join(commitErrs...)
}

// parseCandidates turns one recognized text blob into candidate lines. Every
// in-range monetary token becomes its own candidate; tokens sharing a text
// line share that line's VAT/Consumption classification.
func parseCandidates(text, fileName string) []domain.CandidateLine {
	var candidates []domain.CandidateLine

	for _, rawLine := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(rawLine)
		if trimmed == "" {
			continue
		}

		tokens := plausibleAmounts(trimmed)
		if len(tokens) == 0 {
			continue
		}

		txnType := domain.Consumption
		lower := strings.ToLower(trimmed)
		for _, kw := range taxKeywords {
			if strings.Contains(lower, kw) {
				txnType = domain.VAT
				break
			}
		}

		for _, tok := range tokens {
			candidates = append(candidates, domain.CandidateLine{
				LineID:   uuid.NewString(),
				Type:     txnType,
				Amount:   tok.amount,
				Details:  deriveDetails(trimmed, tok.token),
				Selected: true,
				Source:   fileName,
			})
		}
	}
	return candidates
}

// amountToken pairs a matched monetary substring with its parsed value.
type amountToken struct {
	token  string
	amount decimal.Decimal
}

// plausibleAmounts scans a text line for every monetary token inside the
// plausibility range, in order of appearance.
func plausibleAmounts(line string) []amountToken {
	var tokens []amountToken
	for _, token := range monetaryTokenRe.FindAllString(line, -1) {
		amount, err := decimal.NewFromString(strings.ReplaceAll(token, ",", ""))
		if err != nil {
			continue
		}
		if amount.LessThan(minPlausibleAmount) || amount.GreaterThan(maxPlausibleAmount) {
			continue
		}
		tokens = append(tokens, amountToken{token: token, amount: amount})
	}
	return tokens
}

// deriveDetails builds the candidate description from the matched text line,
// with the amount token removed.
func deriveDetails(line, amountToken string) string {
	return cleanDetails(strings.Replace(line, amountToken, "", 1))
}

// cleanDetails normalizes free-form details: strip non-alphanumerics,
// collapse whitespace, cap the length and substitute a placeholder when too
// little survives.
func cleanDetails(details string) string {
	cleaned := nonAlphanumRe.ReplaceAllString(details, " ")
	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))
	if len(cleaned) > maxDetailsLen {
		cleaned = strings.TrimSpace(cleaned[:maxDetailsLen])
	}
	if len(cleaned) < 3 {
		return domain.DetailsPlaceholder
	}
	return cleaned
}

// copyRun returns a deep enough copy for callers to hold past the lock.
func copyRun(run *domain.ExtractionRun) *domain.ExtractionRun {
	out := *run
	out.Files = make([]domain.FileResult, len(run.Files))
	copy(out.Files, run.Files)
	out.Lines = make([]domain.CandidateLine, len(run.Lines))
	copy(out.Lines, run.Lines)
	return &out
}
