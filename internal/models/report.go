package models

import (
	"time"
)

// Report statuses.
const (
	StatusSuccess        = "success"
	StatusPartialSuccess = "partial_success"
)

// NoTransactionsMessage accompanies a partial_success report.
const NoTransactionsMessage = "No transactions extracted. Please ensure PDF is a clear bank statement."

// Report is the payload handed to presentation and persistence collaborators.
// It can be stored as-is and re-rendered later without recomputation.
type Report struct {
	Status       string           `json:"status" yaml:"status"`
	Message      string           `json:"message,omitempty" yaml:"message,omitempty"`
	EntityName   string           `json:"entity_name" yaml:"entity_name"`
	Documents    int              `json:"documents" yaml:"documents"`
	Summary      Summary          `json:"summary" yaml:"summary"`
	Transactions []RawTransaction `json:"transactions" yaml:"transactions"`
	GraphData    []GraphPoint     `json:"graph_data" yaml:"graph_data"`
	Insights     []Insight        `json:"insights" yaml:"insights"`
	TopPayers    []PayerShare     `json:"top_payers" yaml:"top_payers"`
	RedFlags     []string         `json:"red_flags" yaml:"red_flags"`
	Adjustments  []Adjustment     `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
	RawText      string           `json:"raw_markdown,omitempty" yaml:"raw_markdown,omitempty"`
}

// Document is one source handed to the pipeline: OCR text, or transactions
// that were extracted earlier. Extraction is skipped when Transactions is non-nil.
type Document struct {
	Name         string
	Text         string
	Transactions []RawTransaction
}

// IsPreExtracted reports whether the document already carries its transactions.
func (d Document) IsPreExtracted() bool {
	return d.Transactions != nil
}

// HistoryEntry is the listing view of a stored report.
type HistoryEntry struct {
	ID         string    `json:"id" yaml:"id"`
	EntityName string    `json:"entity_name" yaml:"entity_name"`
	Score      int       `json:"score" yaml:"score"`
	RiskLevel  RiskLevel `json:"risk_level" yaml:"risk_level"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}
