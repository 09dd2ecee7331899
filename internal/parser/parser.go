package parser

import (
	"io"

	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
)

// Parser turns one source document into raw transactions.
type Parser interface {
	// Parse reads a document from r and returns the transactions it contains.
	// An unusable document yields an empty slice; errors are reserved for I/O failures.
	Parse(r io.Reader) ([]models.RawTransaction, error)
}

// CSVConverter writes the transactions of an input file to a CSV file.
type CSVConverter interface {
	ConvertToCSV(inputFile, outputFile string) error
}

// LoggerConfigurable allows a parser's logger to be replaced after construction.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser combines every capability a format adapter offers.
type FullParser interface {
	Parser
	CSVConverter
	LoggerConfigurable
}
