// ABOUTME: Tests for the metric repository.
// ABOUTME: Validates (date, createdAt) ordering and latest-entry resolution.
package repository

import (
	"errors"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func TestListByTypeOrdering(t *testing.T) {
	repo := NewMetricRepository(setupTestDB(t))

	// Inserted out of date order; list must sort by (date, createdAt).
	e1 := models.NewMetricEntry("2024-01-03", models.MetricWeight, 78)
	e1.CreatedAt = 50
	e2 := models.NewMetricEntry("2024-01-01", models.MetricWeight, 80)
	e2.CreatedAt = 100
	e3 := models.NewMetricEntry("2024-01-01", models.MetricWeight, 79.5)
	e3.CreatedAt = 200

	for _, e := range []*models.MetricEntry{e1, e2, e3} {
		if err := repo.Create(e); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := repo.ListByType(models.MetricWeight)
	if err != nil {
		t.Fatalf("ListByType failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	wantIDs := []string{e2.ID, e3.ID, e1.ID}
	for i, e := range got {
		if e.ID != wantIDs[i] {
			t.Errorf("position %d: got %s, want %s", i, e.ID, wantIDs[i])
		}
	}
}

func TestGetLatestDateDominatesCreatedAt(t *testing.T) {
	repo := NewMetricRepository(setupTestDB(t))

	// Backfilled entry with later createdAt but earlier date must not
	// become latest.
	older := models.NewMetricEntry("2024-01-01", models.MetricWeight, 80)
	older.CreatedAt = 100
	newer := models.NewMetricEntry("2024-01-03", models.MetricWeight, 78)
	newer.CreatedAt = 50

	repo.Create(older)
	repo.Create(newer)

	got, err := repo.GetLatestByType(models.MetricWeight)
	if err != nil {
		t.Fatalf("GetLatestByType failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected an entry")
	}
	if got.Date != "2024-01-03" {
		t.Errorf("expected date 2024-01-03 to win, got %s", got.Date)
	}
	if got.Value != 78 {
		t.Errorf("expected value 78, got %f", got.Value)
	}
}

func TestGetLatestEmpty(t *testing.T) {
	repo := NewMetricRepository(setupTestDB(t))

	got, err := repo.GetLatestByType(models.MetricBodyFat)
	if err != nil {
		t.Fatalf("GetLatestByType failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for empty type, got %+v", got)
	}
}

func TestUpdateMetric(t *testing.T) {
	repo := NewMetricRepository(setupTestDB(t))

	e := models.NewMetricEntry("2024-01-01", models.MetricWeight, 80)
	repo.Create(e)

	updated, err := repo.Update(e.ID, MetricEntryPatch{Value: floatPtr(79)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Value != 79 {
		t.Errorf("expected value 79, got %f", updated.Value)
	}
	if updated.Date != "2024-01-01" {
		t.Errorf("expected date untouched, got %s", updated.Date)
	}

	_, err = repo.Update("no-such-id", MetricEntryPatch{Value: floatPtr(1)})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMetric(t *testing.T) {
	repo := NewMetricRepository(setupTestDB(t))

	e := models.NewMetricEntry("2024-01-01", models.MetricBodyFat, 18)
	repo.Create(e)

	if err := repo.Delete(e.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := repo.ListByType(models.MetricBodyFat)
	if err != nil {
		t.Fatalf("ListByType failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 entries after delete, got %d", len(got))
	}
}
