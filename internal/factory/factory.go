// Package factory maps input formats to their parser adapters.
package factory

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/statement-risk/internal/extractor"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/parser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	// Markdown is OCR output carrying pipe-delimited tables (.md, .txt).
	Markdown ParserType = "markdown"
	// CSV is a transaction list produced by an earlier extraction.
	CSV ParserType = "csv"
)

// ParserTypes lists every supported parser type.
var ParserTypes = []ParserType{Markdown, CSV}

// GetParserWithLogger returns a new instance of the appropriate parser for the given type
// with the provided logger for dependency injection.
func GetParserWithLogger(parserType ParserType, logger logging.Logger) (parser.FullParser, error) {
	switch parserType {
	case Markdown:
		return extractor.NewAdapter(logger), nil
	case CSV:
		return parser.NewCSVAdapter(logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}

// TypeForFile picks the parser type from a file extension. Anything that is
// not CSV is treated as OCR text.
func TypeForFile(path string) ParserType {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return CSV
	}
	return Markdown
}
