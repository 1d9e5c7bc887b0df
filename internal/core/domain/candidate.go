package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CandidateLine is an unconfirmed, user-editable extraction result awaiting
// commit to the ledger. Candidate lines are never persisted; they live only
// inside their extraction run.
type CandidateLine struct {
	LineID   string          `json:"lineID"` // unique across lines, files and runs
	Type     TransactionType `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Details  string          `json:"details"`
	Selected bool            `json:"selected"`
	Source   string          `json:"source"` // originating file name
}

// FileResult carries the per-file outcome of one extraction batch. A file
// either yields candidates or a terminal error; failures never abort the
// rest of the batch.
type FileResult struct {
	FileName   string   `json:"fileName"`
	Candidates []string `json:"candidates"` // line IDs extracted from this file
	Error      string   `json:"error,omitempty"`
}

// ExtractionRun is one receipt-to-candidates pass over a batch of images.
// The run is dropped unconditionally after its first confirm.
type ExtractionRun struct {
	RunID     string          `json:"runID"`
	OwnerID   string          `json:"ownerID"`
	Files     []FileResult    `json:"files"`
	Lines     []CandidateLine `json:"lines"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Line returns a pointer to the candidate line with the given id, or nil.
func (r *ExtractionRun) Line(lineID string) *CandidateLine {
	for i := range r.Lines {
		if r.Lines[i].LineID == lineID {
			return &r.Lines[i]
		}
	}
	return nil
}
