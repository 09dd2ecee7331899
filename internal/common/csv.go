// Package common provides the CSV plumbing shared by the extractor and the report writer.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"

	"github.com/gocarina/gocsv"
)

// Delimiter is the CSV field separator used for reading and writing.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV input and output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ReadCSV unmarshals delimited rows into a slice of structs tagged with `csv:"..."`.
func ReadCSV[TCSVRow any](r io.Reader) ([]TCSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}

// ReadCSVFile reads a CSV file into a slice of structs using gocsv.
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	logger = logging.OrDefault(logger)
	logger.Debug("Reading CSV file", logging.F(logging.FieldFile, filePath))

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadCSV[TCSVRow](file)
	if err != nil {
		return nil, err
	}

	logger.Debug("Read CSV rows", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// WriteCSV marshals rows with a header line to w.
func WriteCSV[TCSVRow any](rows []TCSVRow, w io.Writer) error {
	if rows == nil {
		rows = []TCSVRow{}
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteCSVFile writes rows to csvFile, creating parent directories as needed.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, csvFile string, logger logging.Logger) error {
	logger = logging.OrDefault(logger)

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes user-provided paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(rows, file); err != nil {
		return err
	}

	logger.Info("Wrote CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}

// WriteTransactionsToCSV writes raw transactions in the standard column layout.
func WriteTransactionsToCSV(transactions []models.RawTransaction, csvFile string, logger logging.Logger) error {
	return WriteCSVFile(transactions, csvFile, logger)
}

// ReadTransactionsCSV reads raw transactions previously written by WriteTransactionsToCSV.
func ReadTransactionsCSV(r io.Reader) ([]models.RawTransaction, error) {
	return ReadCSV[models.RawTransaction](r)
}
