package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/parsererror"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const reportsBucket = "reports"

// HistoryStore keeps finished reports so they can be listed and re-rendered
// without recomputation.
type HistoryStore interface {
	Save(report *models.Report) (models.HistoryEntry, error)
	List() ([]models.HistoryEntry, error)
	Get(id string) (*models.Report, error)
	Delete(id string) error
	Close() error
}

type historyRecord struct {
	Entry  models.HistoryEntry `json:"entry"`
	Report *models.Report      `json:"report"`
}

// BoltHistory implements HistoryStore on a bbolt file.
type BoltHistory struct {
	db     *bbolt.DB
	logger logging.Logger
	now    func() time.Time
}

// OpenBoltHistory opens (or creates) the history database at path.
func OpenBoltHistory(path string, logger logging.Logger) (*BoltHistory, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(reportsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltHistory{
		db:     db,
		logger: logging.OrDefault(logger).WithField(logging.FieldComponent, "history"),
		now:    time.Now,
	}, nil
}

// Save stores report under a new id.
func (b *BoltHistory) Save(report *models.Report) (models.HistoryEntry, error) {
	if report == nil {
		return models.HistoryEntry{}, fmt.Errorf("cannot save nil report")
	}
	entry := newEntry(report, b.now())

	data, err := json.Marshal(historyRecord{Entry: entry, Report: report})
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("marshaling report: %w", err)
	}

	err = b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(reportsBucket)).Put([]byte(entry.ID), data)
	})
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("saving report: %w", err)
	}

	b.logger.Info("Saved report",
		logging.F(logging.FieldAnalysisID, entry.ID),
		logging.F(logging.FieldScore, entry.Score))
	return entry, nil
}

// List returns all entries, newest first.
func (b *BoltHistory) List() ([]models.HistoryEntry, error) {
	entries := []models.HistoryEntry{}
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(reportsBucket)).ForEach(func(k, v []byte) error {
			var rec historyRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return &parsererror.ParseError{Parser: "history", Field: "record", Value: string(k), Err: err}
			}
			entries = append(entries, rec.Entry)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	sortNewestFirst(entries)
	return entries, nil
}

// Get returns the stored report for id.
func (b *BoltHistory) Get(id string) (*models.Report, error) {
	var rec historyRecord
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(reportsBucket)).Get([]byte(id))
		if data == nil {
			return &parsererror.NotFoundError{Kind: "report", ID: id}
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return &parsererror.ParseError{Parser: "history", Field: "record", Value: id, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec.Report, nil
}

// Delete removes the report with id.
func (b *BoltHistory) Delete(id string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(reportsBucket))
		if bucket.Get([]byte(id)) == nil {
			return &parsererror.NotFoundError{Kind: "report", ID: id}
		}
		return bucket.Delete([]byte(id))
	})
	if err != nil {
		return err
	}
	b.logger.Info("Deleted report", logging.F(logging.FieldAnalysisID, id))
	return nil
}

// Close closes the database file.
func (b *BoltHistory) Close() error {
	return b.db.Close()
}

func newEntry(report *models.Report, now time.Time) models.HistoryEntry {
	return models.HistoryEntry{
		ID:         uuid.New().String(),
		EntityName: report.EntityName,
		Score:      report.Summary.Score,
		RiskLevel:  report.Summary.RiskLevel,
		CreatedAt:  now.UTC(),
	}
}

func sortNewestFirst(entries []models.HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})
}

var _ HistoryStore = (*BoltHistory)(nil)
