package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
)

// UpdateCandidateRequest edits a staged candidate line before confirmation.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateCandidateRequest struct {
	Type     *string          `json:"type" binding:"omitempty,oneof=PAYE VAT CONSUMPTION"`
	Amount   *decimal.Decimal `json:"amount"`
	Details  *string          `json:"details"`
	Selected *bool            `json:"selected"`
}

// CandidateLineResponse is the editable preview row for one extracted amount.
type CandidateLineResponse struct {
	LineID   string          `json:"lineID"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Details  string          `json:"details"`
	Selected bool            `json:"selected"`
	Source   string          `json:"source"`
}

// FileResultResponse is the per-file outcome of an extraction batch.
type FileResultResponse struct {
	FileName       string `json:"fileName"`
	CandidateCount int    `json:"candidateCount"`
	Error          string `json:"error,omitempty"`
}

// ExtractionRunResponse is the full candidate preview for one batch.
type ExtractionRunResponse struct {
	RunID     string                  `json:"runID"`
	Files     []FileResultResponse    `json:"files"`
	Lines     []CandidateLineResponse `json:"lines"`
	CreatedAt time.Time               `json:"createdAt"`
}

// ConfirmRunResponse lists the transactions created by a confirm action.
type ConfirmRunResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToCandidateLineResponse converts a domain candidate line.
func ToCandidateLineResponse(line *domain.CandidateLine) CandidateLineResponse {
	return CandidateLineResponse{
		LineID:   line.LineID,
		Type:     string(line.Type),
		Amount:   line.Amount,
		Details:  line.Details,
		Selected: line.Selected,
		Source:   line.Source,
	}
}

// ToExtractionRunResponse converts a domain extraction run.
func ToExtractionRunResponse(run *domain.ExtractionRun) ExtractionRunResponse {
	resp := ExtractionRunResponse{
		RunID:     run.RunID,
		Files:     make([]FileResultResponse, len(run.Files)),
		Lines:     make([]CandidateLineResponse, len(run.Lines)),
		CreatedAt: run.CreatedAt,
	}
	for i := range run.Files {
		resp.Files[i] = FileResultResponse{
			FileName:       run.Files[i].FileName,
			CandidateCount: len(run.Files[i].Candidates),
			Error:          run.Files[i].Error,
		}
	}
	for i := range run.Lines {
		resp.Lines[i] = ToCandidateLineResponse(&run.Lines[i])
	}
	return resp
}
