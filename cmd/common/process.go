// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"io"

	"fjacquet/statement-risk/internal/batch"
	"fjacquet/statement-risk/internal/fileutils"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/parser"
	"fjacquet/statement-risk/internal/store"
)

// ProcessFile converts a single file to transaction CSV using the given parser.
func ProcessFile(p parser.FullParser, inputFile, outputFile string, log logging.Logger) error {
	if inputFile == "" || outputFile == "" {
		return fmt.Errorf("input and output files must be specified")
	}

	p.SetLogger(log)

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		return fmt.Errorf("error converting to CSV: %w", err)
	}
	log.Info("Conversion completed successfully!",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldOutputFile, outputFile))
	return nil
}

// LoadInputs expands paths into documents. Directories contribute the files
// matching extensions plus any previously extracted CSV files.
func LoadInputs(paths []string, extensions []string) ([]models.Document, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("at least one input file or directory must be specified")
	}

	exts := append(append([]string{}, extensions...), fileutils.CSVExtension)
	files, err := fileutils.CollectInputs(paths, exts)
	if err != nil {
		return nil, err
	}
	return fileutils.LoadDocuments(files)
}

// AnalyzeInputs loads the inputs and runs them through the processor as one batch.
func AnalyzeInputs(ctx context.Context, proc *batch.Processor, paths []string, extensions []string) (*models.Report, error) {
	docs, err := LoadInputs(paths, extensions)
	if err != nil {
		return nil, err
	}
	return proc.Process(ctx, docs)
}

// SaveToHistory stores report when a history store is configured. The second
// return value reports whether anything was saved.
func SaveToHistory(h store.HistoryStore, report *models.Report, log logging.Logger) (models.HistoryEntry, bool, error) {
	if h == nil {
		return models.HistoryEntry{}, false, nil
	}
	entry, err := h.Save(report)
	if err != nil {
		return models.HistoryEntry{}, false, fmt.Errorf("failed to save report to history: %w", err)
	}
	log.Info("Saved report to history",
		logging.F(logging.FieldAnalysisID, entry.ID),
		logging.F(logging.FieldScore, entry.Score))
	return entry, true, nil
}

// WriteOutput writes data to outputFile, or to stdout when outputFile is empty.
func WriteOutput(data []byte, outputFile string, stdout io.Writer) error {
	if outputFile == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return fileutils.WriteFile(outputFile, data, 0600)
}
