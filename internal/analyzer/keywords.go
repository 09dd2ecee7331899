package analyzer

import (
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/textutils"
)

// RedFlagKeywords mark returned cheques, reversals and bank charges.
var RedFlagKeywords = []string{"RETURN", "REVERSAL", "DISHONOURED", "INSUFFICIENT", "FEE", "PENALTY"}

// HighRiskKeywords mark gambling and similar high-risk spend.
var HighRiskKeywords = []string{"GENTING", "CASINO", "BET", "MAGNUM", "TOTO"}

func countMatching(parsed []models.ParsedTransaction, keywords []string) int {
	n := 0
	for _, tx := range parsed {
		if textutils.ContainsAny(tx.Description, keywords) {
			n++
		}
	}
	return n
}
