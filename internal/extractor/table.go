// Package extractor recovers transaction rows from the pipe-delimited tables
// embedded in OCR'd bank statement text.
package extractor

import (
	"strings"

	"fjacquet/statement-risk/internal/currencyutils"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/textutils"

	"github.com/shopspring/decimal"
)

// Reasons logged when a table row is not turned into a transaction.
const (
	reasonSeparator     = "separator"
	reasonCellCount     = "cell_count_mismatch"
	reasonZeroAmount    = "zero_amount"
	minFallbackTableLen = 3
)

// Extractor turns statement text into raw transactions. It never fails:
// unusable input yields an empty slice.
type Extractor struct {
	logger logging.Logger
}

// New creates an Extractor. A nil logger falls back to the default logger.
func New(logger logging.Logger) *Extractor {
	return &Extractor{logger: logging.OrDefault(logger).WithField(logging.FieldComponent, "extractor")}
}

// ExtractTransactions extracts with a default logger.
func ExtractTransactions(text string) []models.RawTransaction {
	return New(nil).ExtractTransactions(text)
}

// ExtractTransactions scans text for table rows, detects the header, maps its
// columns to roles and parses every following row.
func (e *Extractor) ExtractTransactions(text string) []models.RawTransaction {
	tableLines := tableLines(text)
	if len(tableLines) == 0 {
		e.logger.Debug("No table lines found")
		return []models.RawTransaction{}
	}

	headerIdx, headers, ok := findHeader(tableLines)
	if !ok {
		e.logger.Debug("No header row found", logging.F(logging.FieldCount, len(tableLines)))
		return []models.RawTransaction{}
	}

	cols := MapColumns(headers)
	if !cols.Has(RoleDate) {
		e.logger.Debug("Header has no date column",
			logging.F(logging.FieldHeader, strings.Join(headers, " | ")))
		return []models.RawTransaction{}
	}

	transactions := make([]models.RawTransaction, 0, len(tableLines)-headerIdx-1)
	for i, line := range tableLines[headerIdx+1:] {
		row := headerIdx + 1 + i
		if strings.Contains(line, "---") {
			e.skip(row, reasonSeparator)
			continue
		}

		cells := textutils.SplitTableRow(line)
		if len(cells) != len(headers) {
			e.skip(row, reasonCellCount)
			continue
		}

		tx := parseRow(cells, cols)
		if tx.IsEmpty() {
			e.skip(row, reasonZeroAmount)
			continue
		}
		transactions = append(transactions, tx)
	}

	e.logger.Debug("Extracted transactions",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldHeader, strings.Join(headers, " | ")))
	return transactions
}

func (e *Extractor) skip(row int, reason string) {
	e.logger.Debug("Skipping table row",
		logging.F(logging.FieldRow, row),
		logging.F(logging.FieldReason, reason))
}

func tableLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if textutils.IsTableRow(line) {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

// findHeader returns the first row that names both a date and an amount column.
// Without one, a table of more than two lines uses its first line.
func findHeader(lines []string) (int, []string, bool) {
	for i, line := range lines {
		cells := textutils.SplitTableRow(line)
		if anyCellMatches(cells, DateKeywords) && anyCellMatches(cells, AmountKeywords) {
			return i, cells, true
		}
	}
	if len(lines) >= minFallbackTableLen {
		return 0, textutils.SplitTableRow(lines[0]), true
	}
	return -1, nil, false
}

func anyCellMatches(cells []string, keywords []string) bool {
	for _, c := range cells {
		if textutils.ContainsAny(c, keywords) {
			return true
		}
	}
	return false
}

func parseRow(cells []string, cols ColumnMap) models.RawTransaction {
	tx := models.RawTransaction{
		Date:        cells[cols[RoleDate]],
		Description: description(cells, cols),
		Inflow:      decimal.Zero,
		Outflow:     decimal.Zero,
	}

	switch {
	case cols.Has(RoleCredit) && cols.Has(RoleDebit):
		tx.Inflow = currencyutils.ParseCurrency(cells[cols[RoleCredit]]).Abs()
		tx.Outflow = currencyutils.ParseCurrency(cells[cols[RoleDebit]]).Abs()
	case cols.Has(RoleAmount):
		raw := cells[cols[RoleAmount]]
		value := currencyutils.ParseCurrency(raw)
		if currencyutils.IsAccountingNegative(raw) {
			tx.Outflow = value.Abs()
		} else {
			tx.Inflow = value
		}
	}
	return tx
}

// description uses the description column, or space-joins every cell that
// carries no role, empty cells included.
func description(cells []string, cols ColumnMap) string {
	if cols.Has(RoleDescription) {
		return cells[cols[RoleDescription]]
	}
	parts := make([]string, 0, len(cells))
	for i, c := range cells {
		if !cols.isMapped(i) {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
