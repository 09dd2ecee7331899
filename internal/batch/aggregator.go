// Package batch runs the extractor over several documents and assembles the
// merged transactions into a report.
package batch

import (
	"strings"

	"fjacquet/statement-risk/internal/extractor"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
)

// Concatenate joins per-document results in document order, keeping each
// document's own row order.
func Concatenate(perDocument [][]models.RawTransaction) []models.RawTransaction {
	total := 0
	for _, txns := range perDocument {
		total += len(txns)
	}
	all := make([]models.RawTransaction, 0, total)
	for _, txns := range perDocument {
		all = append(all, txns...)
	}
	return all
}

// EntityName returns the first name found in the documents, in order, or fallback.
func EntityName(docs []models.Document, fallback string) string {
	for _, doc := range docs {
		if name := extractor.ExtractEntityName(doc.Text); name != "" {
			return name
		}
	}
	return fallback
}

// RawText joins the text of all documents separated by a blank line.
func RawText(docs []models.Document) string {
	var b strings.Builder
	for _, doc := range docs {
		b.WriteString(doc.Text)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}

// DetectDuplicates logs transactions that look like repeats of an earlier one
// and returns how many were found. Nothing is removed.
func DetectDuplicates(transactions []models.RawTransaction, logger logging.Logger) int {
	duplicateCount := 0

	for i := 0; i < len(transactions)-1; i++ {
		for j := i + 1; j < len(transactions); j++ {
			if arePotentialDuplicates(transactions[i], transactions[j]) {
				duplicateCount++
				logger.Warn("Potential duplicate transaction",
					logging.F(logging.FieldDate, transactions[i].Date),
					logging.F(logging.FieldDescription, transactions[i].Description),
					logging.F("inflow", transactions[i].Inflow.String()),
					logging.F("outflow", transactions[i].Outflow.String()))
				break // Only log once per transaction
			}
		}
	}

	if duplicateCount > 0 {
		logger.Warn("Found potential duplicate transactions",
			logging.F(logging.FieldCount, duplicateCount))
	}
	return duplicateCount
}

func arePotentialDuplicates(tx1, tx2 models.RawTransaction) bool {
	if strings.TrimSpace(tx1.Date) != strings.TrimSpace(tx2.Date) {
		return false
	}
	if !tx1.Inflow.Equal(tx2.Inflow) || !tx1.Outflow.Equal(tx2.Outflow) {
		return false
	}
	desc1 := strings.ToLower(strings.TrimSpace(tx1.Description))
	desc2 := strings.ToLower(strings.TrimSpace(tx2.Description))
	return desc1 == desc2
}
