package store

import (
	"sync"
	"time"

	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/parsererror"
)

// MemoryHistory is an in-memory HistoryStore for tests and dry runs.
type MemoryHistory struct {
	mu      sync.Mutex
	records map[string]historyRecord
	Now     func() time.Time

	// Error flags for testing error conditions
	SaveError error
	ListError error
}

// NewMemoryHistory returns an empty MemoryHistory.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{records: make(map[string]historyRecord), Now: time.Now}
}

// Save stores a copy of report.
func (m *MemoryHistory) Save(report *models.Report) (models.HistoryEntry, error) {
	if m.SaveError != nil {
		return models.HistoryEntry{}, m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := newEntry(report, m.Now())
	stored := *report
	m.records[entry.ID] = historyRecord{Entry: entry, Report: &stored}
	return entry, nil
}

// List returns all entries, newest first.
func (m *MemoryHistory) List() ([]models.HistoryEntry, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]models.HistoryEntry, 0, len(m.records))
	for _, rec := range m.records {
		entries = append(entries, rec.Entry)
	}
	sortNewestFirst(entries)
	return entries, nil
}

// Get returns the stored report.
func (m *MemoryHistory) Get(id string) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &parsererror.NotFoundError{Kind: "report", ID: id}
	}
	return rec.Report, nil
}

// Delete removes the stored report.
func (m *MemoryHistory) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &parsererror.NotFoundError{Kind: "report", ID: id}
	}
	delete(m.records, id)
	return nil
}

// Close is a no-op.
func (m *MemoryHistory) Close() error { return nil }

var _ HistoryStore = (*MemoryHistory)(nil)
