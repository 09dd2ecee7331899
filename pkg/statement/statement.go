// Package statement is the public entry point for extracting transactions from
// OCR'd bank statements and scoring the resulting cash flow.
//
// Typical use:
//
//	txns := statement.ExtractTransactions(ocrText)
//	analysis := statement.Analyze(txns)
//	fmt.Println(analysis.Summary.Score, analysis.Summary.RiskLevel)
package statement

import (
	"context"

	"fjacquet/statement-risk/internal/analyzer"
	"fjacquet/statement-risk/internal/batch"
	"fjacquet/statement-risk/internal/extractor"
	"fjacquet/statement-risk/internal/models"
)

// Re-exported data types.
type (
	Transaction = models.RawTransaction
	Analysis    = models.Analysis
	Report      = models.Report
	Document    = models.Document
	Insight     = models.Insight
	RiskLevel   = models.RiskLevel
)

// ExtractTransactions recovers the transactions held in the pipe tables of text.
// It never fails; unusable input yields an empty slice.
func ExtractTransactions(text string) []Transaction {
	return extractor.ExtractTransactions(text)
}

// ExtractEntityName returns the account holder named near the top of text, or "".
func ExtractEntityName(text string) string {
	return extractor.ExtractEntityName(text)
}

// Analyze scores transactions and derives the monthly series and insights.
func Analyze(transactions []Transaction) *Analysis {
	return analyzer.Analyze(transactions)
}

// AnalyzeDocuments extracts every document concurrently and analyzes the merged
// transactions once.
func AnalyzeDocuments(ctx context.Context, docs []Document) (*Report, error) {
	return batch.NewProcessor(nil, nil, nil, batch.Options{}).Process(ctx, docs)
}
