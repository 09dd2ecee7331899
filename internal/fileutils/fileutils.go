// Package fileutils finds and loads the statement documents handed to the CLI.
package fileutils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"fjacquet/statement-risk/internal/common"
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CSVExtension marks files holding transactions that were extracted earlier.
const CSVExtension = ".csv"

const snippetLength = 40

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// WriteFile writes data to a file, creating any parent directories if needed
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// HasExtension reports whether path ends in one of extensions, ignoring case.
func HasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// ListFilesWithExtensions returns the files under dirPath whose extension is
// one of extensions, sorted by path.
func ListFilesWithExtensions(dirPath string, extensions []string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	var files []string
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && HasExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// CollectInputs expands directories into their matching files. Explicit file
// paths are kept whatever their extension; order follows the arguments.
func CollectInputs(paths []string, extensions []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		switch {
		case DirectoryExists(p):
			found, err := ListFilesWithExtensions(p, extensions)
			if err != nil {
				return nil, err
			}
			log.WithField("directory", p).WithField("count", len(found)).Debug("Collected input files")
			files = append(files, found...)
		case FileExists(p):
			files = append(files, p)
		default:
			return nil, fmt.Errorf("input does not exist: %s", p)
		}
	}
	return files, nil
}

// LoadDocument reads one input. CSV files are read as previously extracted
// transactions; anything else must be UTF-8 text.
func LoadDocument(path string) (models.Document, error) {
	if path == "" {
		return models.Document{}, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "statement text",
			Msg:            "empty path",
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read file: %w", err)
	}

	name := filepath.Base(path)
	if HasExtension(path, []string{CSVExtension}) {
		transactions, err := common.ReadTransactionsCSV(bytes.NewReader(data))
		if err != nil {
			return models.Document{}, &parsererror.ParseError{Parser: "csv", Field: "file", Value: path, Err: err}
		}
		if transactions == nil {
			transactions = []models.RawTransaction{}
		}
		return models.Document{Name: name, Transactions: transactions}, nil
	}

	if !utf8.Valid(data) {
		return models.Document{}, &parsererror.InvalidFormatError{
			FilePath:             path,
			ExpectedFormat:       "UTF-8 statement text",
			ActualContentSnippet: snippet(data),
			Msg:                  "content is not valid UTF-8",
		}
	}
	return models.Document{Name: name, Text: string(data)}, nil
}

// LoadDocuments loads every input in order.
func LoadDocuments(paths []string) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := LoadDocument(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func snippet(data []byte) string {
	if len(data) > snippetLength {
		data = data[:snippetLength]
	}
	return strings.ToValidUTF8(string(data), "?")
}
