// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fmt"
	"os"

	"fjacquet/statement-risk/internal/common"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
)

// BaseParser provides the logger and CSV writing shared by all format adapters.
//
// Adapters embed it:
//
//	type Adapter struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger falls back to the default logger.
func NewBaseParser(logger logging.Logger) BaseParser {
	return BaseParser{
		logger: logging.OrDefault(logger),
	}
}

// SetLogger implements the LoggerConfigurable interface.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// WriteToCSV writes transactions using the shared CSV layout.
func (b *BaseParser) WriteToCSV(transactions []models.RawTransaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	b.logger.Info("Writing transactions to CSV using common writer",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(transactions)))

	return common.WriteTransactionsToCSV(transactions, csvFile, b.logger)
}

// ConvertFile opens inputFile, runs p over it and writes the result to outputFile.
func (b *BaseParser) ConvertFile(p Parser, inputFile, outputFile string) error {
	file, err := os.Open(inputFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			b.logger.WithError(err).Warn("Failed to close input file",
				logging.F(logging.FieldInputFile, inputFile))
		}
	}()

	transactions, err := p.Parse(file)
	if err != nil {
		return err
	}

	return b.WriteToCSV(transactions, outputFile)
}
