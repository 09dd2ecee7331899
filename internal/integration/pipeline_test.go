package integration

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/statement-risk/internal/analyzer"
	"fjacquet/statement-risk/internal/batch"
	"fjacquet/statement-risk/internal/extractor"
	"fjacquet/statement-risk/internal/factory"
	"fjacquet/statement-risk/internal/fileutils"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const juneStatement = `ACME TRADING SDN BHD
Account statement June 2024
| Date | Description | Debit | Credit |
|---|---|---|---|
| 03/06/2024 | Payment from Alpha | | 6,000.00 |
| 15/06/2024 | Payment from Kappa | | 4,000.00 |
| 20/06/2024 | Office rent | 2,500.00 | |
| 28/06/2024 | Cheque return fee | 10.00 | |`

const julyStatement = `Page 2
| Date | Particulars | Amount |
| 05/07/2024 | Payment from Alpha | 6,500.00 |
| 10/07/2024 | Supplier | (3,000.00) |
| 12/07/2024 | Genting outlet | (200.00) |`

func fixedClock() time.Time {
	return time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
}

func newProcessor(logger logging.Logger) *batch.Processor {
	return batch.NewProcessor(logger, extractor.New(logger), analyzer.New(logger, analyzer.WithClock(fixedClock)), batch.Options{Workers: 4})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestExtractedCSVMatchesDirectAnalysis checks that analyzing a statement
// directly and analyzing its extracted CSV produce the same score.
func TestExtractedCSVMatchesDirectAnalysis(t *testing.T) {
	dir := t.TempDir()
	logger := logging.NewMockLogger()
	mdPath := writeFile(t, dir, "june.md", juneStatement)
	csvPath := filepath.Join(dir, "june.csv")

	p, err := factory.GetParserWithLogger(factory.TypeForFile(mdPath), logger)
	require.NoError(t, err)
	require.NoError(t, p.ConvertToCSV(mdPath, csvPath))

	headers := readCSVHeaders(t, csvPath)
	assert.Equal(t, []string{"Date", "Description", "Inflow", "Outflow"}, headers)

	mdDoc, err := fileutils.LoadDocument(mdPath)
	require.NoError(t, err)
	csvDoc, err := fileutils.LoadDocument(csvPath)
	require.NoError(t, err)
	require.True(t, csvDoc.IsPreExtracted())

	proc := newProcessor(logger)
	direct, err := proc.Process(context.Background(), []models.Document{mdDoc})
	require.NoError(t, err)
	viaCSV, err := proc.Process(context.Background(), []models.Document{csvDoc})
	require.NoError(t, err)

	assert.Equal(t, direct.Summary, viaCSV.Summary)
	assert.Equal(t, direct.GraphData, viaCSV.GraphData)
	assert.Equal(t, direct.Adjustments, viaCSV.Adjustments)
	assert.Equal(t, "ACME TRADING SDN BHD", direct.EntityName)
	assert.Equal(t, batch.DefaultEntityName, viaCSV.EntityName)
}

// TestBatchWithMixedFileTypes merges a text statement and an extracted CSV
// found in one directory into a single report.
func TestBatchWithMixedFileTypes(t *testing.T) {
	dir := t.TempDir()
	logger := logging.NewMockLogger()
	writeFile(t, dir, "a_june.md", juneStatement)
	writeFile(t, dir, "b_july.txt", julyStatement)
	writeFile(t, dir, "c_august.csv", "Date,Description,Inflow,Outflow\n02/08/2024,Payment from Alpha,7000,0\n")
	writeFile(t, dir, "ignored.pdf", "%PDF-1.4")

	files, err := fileutils.CollectInputs([]string{dir}, []string{".md", ".txt", ".csv"})
	require.NoError(t, err)
	require.Len(t, files, 3)

	docs, err := fileutils.LoadDocuments(files)
	require.NoError(t, err)

	report, err := newProcessor(logger).Process(context.Background(), docs)
	require.NoError(t, err)

	assert.Equal(t, models.StatusSuccess, report.Status)
	assert.Equal(t, "ACME TRADING SDN BHD", report.EntityName)
	assert.Equal(t, 3, report.Documents)
	assert.Len(t, report.Transactions, 8)

	months := make([]string, 0, len(report.GraphData))
	for _, g := range report.GraphData {
		months = append(months, g.Month)
	}
	assert.Equal(t, []string{"Jun", "Jul", "Aug"}, months)

	assert.Equal(t, 23500.0, report.Summary.TotalInflow)
	assert.Equal(t, 5710.0, report.Summary.TotalOutflow)
	assert.Equal(t, -5, adjustment(report, models.FactorRedFlags))
	assert.Equal(t, -20, adjustment(report, models.FactorHighRisk))
	assert.Contains(t, report.RedFlags, "Transactions related to Gambling/Casinos detected.")
}

// TestHistoryPersistsAcrossReopen stores a report in bbolt, closes the
// database and reads it back.
func TestHistoryPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	logger := logging.NewMockLogger()

	report, err := newProcessor(logger).Process(context.Background(), []models.Document{{Name: "june.md", Text: juneStatement}})
	require.NoError(t, err)

	h, err := store.OpenBoltHistory(dbPath, logger)
	require.NoError(t, err)
	entry, err := h.Save(report)
	require.NoError(t, err)
	require.NoError(t, h.Close())

	h, err = store.OpenBoltHistory(dbPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	got, err := h.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Summary, got.Summary)
	assert.Equal(t, report.Insights, got.Insights)
	assert.Len(t, got.Transactions, len(report.Transactions))
}

func readCSVHeaders(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path) // #nosec G304 -- test file in temp dir
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	headers, err := csv.NewReader(f).Read()
	require.NoError(t, err)
	return headers
}

func adjustment(r *models.Report, factor string) int {
	total := 0
	for _, a := range r.Adjustments {
		if a.Factor == factor {
			total += a.Points
		}
	}
	return total
}
