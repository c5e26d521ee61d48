// ABOUTME: Metric repository for weight and body fat entries.
// ABOUTME: Ordering by (date, createdAt) is load-bearing for charts and deltas.
package repository

import (
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// MetricRepository stores body metric entries.
type MetricRepository struct {
	db *store.DB
}

// NewMetricRepository creates a metric repository over the given store.
func NewMetricRepository(db *store.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

// MetricEntryPatch is a partial metric update. Nil fields keep the
// stored value.
type MetricEntryPatch struct {
	Date  *string
	Value *float64
	Unit  *string
}

// Create stores a new metric entry.
func (r *MetricRepository) Create(entry *models.MetricEntry) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return metrics.Add(txn, entry)
	})
	if err != nil {
		return fmt.Errorf("create metric: %w", err)
	}
	return nil
}

// Update merges a partial update onto an existing entry. Missing
// entries surface ErrNotFound.
func (r *MetricRepository) Update(id string, patch MetricEntryPatch) (*models.MetricEntry, error) {
	var entry *models.MetricEntry
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		entry, err = metrics.Get(txn, id)
		if err != nil {
			return err
		}

		if patch.Date != nil {
			entry.Date = *patch.Date
		}
		if patch.Value != nil {
			entry.Value = *patch.Value
		}
		if patch.Unit != nil {
			entry.Unit = *patch.Unit
		}
		entry.UpdatedAt = models.NowMillis()

		return metrics.Put(txn, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("update metric %s: %w", id, err)
	}
	return entry, nil
}

// Delete removes an entry by id. No-op if absent.
func (r *MetricRepository) Delete(id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return metrics.Delete(txn, id)
	})
	if err != nil {
		return fmt.Errorf("delete metric %s: %w", id, err)
	}
	return nil
}

// ListByType returns all entries of a type sorted by (date ascending,
// then createdAt ascending).
func (r *MetricRepository) ListByType(metricType models.MetricType) ([]*models.MetricEntry, error) {
	var out []*models.MetricEntry
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = metrics.GetAllByIndex(txn, "type", string(metricType))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list %s metrics: %w", metricType, err)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out, nil
}

// GetLatestByType resolves the maximum entry by (date, then createdAt),
// not by insertion order: a backfilled earlier-dated entry never
// becomes latest. Returns nil when no entries of the type exist.
func (r *MetricRepository) GetLatestByType(metricType models.MetricType) (*models.MetricEntry, error) {
	entries, err := r.ListByType(metricType)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[len(entries)-1], nil
}
