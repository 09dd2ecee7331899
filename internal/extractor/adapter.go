package extractor

import (
	"fmt"
	"io"

	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/parser"
)

// Adapter exposes the Extractor as a parser.FullParser for OCR text documents.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a new adapter for OCR'd statement text.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{BaseParser: parser.NewBaseParser(logger)}
}

// Parse reads the whole document and extracts its transactions.
func (a *Adapter) Parse(r io.Reader) ([]models.RawTransaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading document: %w", err)
	}
	return New(a.GetLogger()).ExtractTransactions(string(data)), nil
}

// ConvertToCSV implements parser.CSVConverter.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	return a.ConvertFile(a, inputFile, outputFile)
}

var _ parser.FullParser = (*Adapter)(nil)
