package analyze

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/statement-risk/internal/config"
	"fjacquet/statement-risk/internal/container"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const juneStatement = `ACME TRADING SDN BHD
| Date | Description | Debit | Credit |
|---|---|---|---|
| 03/06/2024 | Payment from Alpha | | 6,000.00 |
| 15/06/2024 | Payment from Kappa | | 4,000.00 |
| 20/06/2024 | Office rent | 2,500.00 | |`

func newTestContainer(t *testing.T, history store.HistoryStore) *container.Container {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Extraction.Workers = 2
	cfg.Extraction.Extensions = []string{".md"}
	cfg.Analysis.KeywordsFile = filepath.Join(t.TempDir(), "absent.yaml")
	cfg.Report.Format = "json"

	c, err := container.NewContainer(cfg, container.WithLogger(logging.NewMockLogger()), container.WithHistory(history))
	require.NoError(t, err)
	return c
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		seriesCSV = ""
		transactionsCSV = ""
		noSave = false
	})
}

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "analyze [files or directories...]", Cmd.Use)
	assert.Contains(t, Cmd.Short, "risk report")
	assert.Contains(t, Cmd.Long, "Example")
	assert.NotNil(t, Cmd.Flags().Lookup("series-csv"))
	assert.NotNil(t, Cmd.Flags().Lookup("transactions-csv"))
	assert.NotNil(t, Cmd.Flags().Lookup("no-save"))
}

func TestRun_RendersAndSaves(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "june.md")
	require.NoError(t, os.WriteFile(input, []byte(juneStatement), 0600))

	seriesCSV = filepath.Join(dir, "series.csv")
	transactionsCSV = filepath.Join(dir, "txns.csv")

	mem := store.NewMemoryHistory()
	c := newTestContainer(t, mem)

	out, err := run(context.Background(), c, []string{input}, "json", logging.NewMockLogger())
	require.NoError(t, err)

	var rep models.Report
	require.NoError(t, json.Unmarshal(out, &rep))
	assert.Equal(t, models.StatusSuccess, rep.Status)
	assert.Equal(t, "ACME TRADING SDN BHD", rep.EntityName)
	assert.Len(t, rep.Transactions, 3)

	series, err := os.ReadFile(seriesCSV)
	require.NoError(t, err)
	assert.Contains(t, string(series), "Month,Inflow,Outflow")
	assert.Contains(t, string(series), "Jun,10000,2500")

	txns, err := os.ReadFile(transactionsCSV)
	require.NoError(t, err)
	assert.Contains(t, string(txns), "Office rent")

	entries, err := mem.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ACME TRADING SDN BHD", entries[0].EntityName)
}

func TestRun_NoSaveSkipsHistory(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "june.md")
	require.NoError(t, os.WriteFile(input, []byte(juneStatement), 0600))
	noSave = true

	mem := store.NewMemoryHistory()
	out, err := run(context.Background(), newTestContainer(t, mem), []string{dir}, "text", logging.NewMockLogger())
	require.NoError(t, err)
	assert.Contains(t, string(out), "ACME TRADING SDN BHD")

	entries, err := mem.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_Errors(t *testing.T) {
	resetFlags(t)
	c := newTestContainer(t, nil)

	_, err := run(context.Background(), c, nil, "json", logging.NewMockLogger())
	assert.Error(t, err)

	dir := t.TempDir()
	input := filepath.Join(dir, "june.md")
	require.NoError(t, os.WriteFile(input, []byte(juneStatement), 0600))
	_, err = run(context.Background(), c, []string{input}, "pdf", logging.NewMockLogger())
	assert.ErrorContains(t, err, "unsupported report format")
}
