package history

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/parsererror"
	"fjacquet/statement-risk/internal/report"
	"fjacquet/statement-risk/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededHistory(t *testing.T) (*store.MemoryHistory, models.HistoryEntry) {
	t.Helper()
	mem := store.NewMemoryHistory()
	mem.Now = func() time.Time { return time.Date(2024, time.July, 1, 9, 30, 0, 0, time.UTC) }
	entry, err := mem.Save(&models.Report{
		Status:     models.StatusSuccess,
		EntityName: "ACME TRADING SDN BHD",
		Summary:    models.Summary{Score: 72, RiskLevel: models.RiskModerate},
	})
	require.NoError(t, err)
	return mem, entry
}

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "history", Cmd.Use)
	names := make([]string, 0, len(Cmd.Commands()))
	for _, c := range Cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "show", "delete"}, names)
}

func TestList(t *testing.T) {
	mem, entry := seededHistory(t)

	var out bytes.Buffer
	require.NoError(t, list(mem, &out))
	assert.Contains(t, out.String(), "ID")
	assert.Contains(t, out.String(), entry.ID)
	assert.Contains(t, out.String(), "2024-07-01 09:30")
	assert.Contains(t, out.String(), "Moderate Risk")
}

func TestShow(t *testing.T) {
	mem, entry := seededHistory(t)
	g := report.NewReportGenerator(logging.NewMockLogger())

	out, err := show(mem, g, entry.ID, "json")
	require.NoError(t, err)
	var rep models.Report
	require.NoError(t, json.Unmarshal(out, &rep))
	assert.Equal(t, "ACME TRADING SDN BHD", rep.EntityName)

	_, err = show(mem, g, "missing", "json")
	assert.True(t, parsererror.IsNotFound(err))
}

func TestRemove(t *testing.T) {
	mem, entry := seededHistory(t)

	require.NoError(t, remove(mem, entry.ID))
	assert.True(t, parsererror.IsNotFound(remove(mem, entry.ID)))
}

func TestDisabledHistory(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, list(nil, &out), errDisabled)
	_, err := show(nil, report.NewReportGenerator(nil), "x", "json")
	assert.ErrorIs(t, err, errDisabled)
	assert.ErrorIs(t, remove(nil, "x"), errDisabled)
}
