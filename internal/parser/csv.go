package parser

import (
	"fmt"
	"io"

	"fjacquet/statement-risk/internal/common"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
)

// CSVAdapter reads transactions that were already extracted to the shared CSV layout.
type CSVAdapter struct {
	BaseParser
}

// NewCSVAdapter creates an adapter for previously extracted transaction files.
func NewCSVAdapter(logger logging.Logger) *CSVAdapter {
	return &CSVAdapter{BaseParser: NewBaseParser(logger)}
}

// Parse decodes the CSV rows. Rows without money in either direction are dropped.
func (a *CSVAdapter) Parse(r io.Reader) ([]models.RawTransaction, error) {
	rows, err := common.ReadTransactionsCSV(r)
	if err != nil {
		return nil, fmt.Errorf("error reading transactions CSV: %w", err)
	}

	transactions := make([]models.RawTransaction, 0, len(rows))
	for _, tx := range rows {
		if tx.IsEmpty() {
			a.logger.Debug("Skipping CSV row without amounts",
				logging.F(logging.FieldDate, tx.Date),
				logging.F(logging.FieldDescription, tx.Description))
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// ConvertToCSV rewrites the input with the configured delimiter.
func (a *CSVAdapter) ConvertToCSV(inputFile, outputFile string) error {
	return a.ConvertFile(a, inputFile, outputFile)
}

var _ FullParser = (*CSVAdapter)(nil)
