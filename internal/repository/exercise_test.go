// ABOUTME: Tests for the exercise catalog cache, favorites, and usage log.
// ABOUTME: Covers bulk upsert round-trips, index listings, text search, and recent dedupe.
package repository

import (
	"errors"
	"reflect"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func sampleCatalog() []*models.Exercise {
	return []*models.Exercise{
		{
			ID: "0001", Name: "barbell bench press", BodyPart: "chest",
			Target: "pectorals", Equipment: "barbell",
			Instructions:     []string{"lie on the bench", "press the bar"},
			SecondaryMuscles: []string{"triceps", "delts"},
		},
		{
			ID: "0002", Name: "dumbbell curl", BodyPart: "upper arms",
			Target: "biceps", Equipment: "dumbbell",
		},
		{
			ID: "0003", Name: "barbell squat", BodyPart: "upper legs",
			Target: "quads", Equipment: "barbell",
		},
	}
}

func TestBulkUpsertRoundTrip(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	seed := sampleCatalog()
	if err := repo.BulkUpsert(seed); err != nil {
		t.Fatalf("BulkUpsert failed: %v", err)
	}

	got, err := repo.GetByID("0001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !reflect.DeepEqual(got, seed[0]) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, seed[0])
	}

	n, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 cached exercises, got %d", n)
	}

	// Upserting again with the same ids must not duplicate.
	if err := repo.BulkUpsert(seed); err != nil {
		t.Fatalf("second BulkUpsert failed: %v", err)
	}
	n, _ = repo.Count()
	if n != 3 {
		t.Errorf("expected count stable at 3, got %d", n)
	}
}

func TestGetByIDMissing(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	_, err := repo.GetByID("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListByAttribute(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))
	repo.BulkUpsert(sampleCatalog())

	byEquipment, err := repo.ListByEquipment("barbell")
	if err != nil {
		t.Fatalf("ListByEquipment failed: %v", err)
	}
	if len(byEquipment) != 2 {
		t.Errorf("expected 2 barbell exercises, got %d", len(byEquipment))
	}

	byTarget, err := repo.ListByTarget("biceps")
	if err != nil {
		t.Fatalf("ListByTarget failed: %v", err)
	}
	if len(byTarget) != 1 || byTarget[0].ID != "0002" {
		t.Errorf("unexpected biceps result: %+v", byTarget)
	}

	byBodyPart, err := repo.ListByBodyPart("chest")
	if err != nil {
		t.Fatalf("ListByBodyPart failed: %v", err)
	}
	if len(byBodyPart) != 1 || byBodyPart[0].ID != "0001" {
		t.Errorf("unexpected chest result: %+v", byBodyPart)
	}
}

func TestSearchText(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))
	repo.BulkUpsert(sampleCatalog())

	got, err := repo.SearchText("bench press")
	if err != nil {
		t.Fatalf("SearchText failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "0001" {
		t.Errorf("unexpected search result: %+v", got)
	}

	// Tokens match across fields: "barbell" (equipment) + "quads" (target).
	got, err = repo.SearchText("Barbell QUADS")
	if err != nil {
		t.Fatalf("SearchText failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "0003" {
		t.Errorf("unexpected cross-field result: %+v", got)
	}

	got, err = repo.SearchText("nonexistent")
	if err != nil {
		t.Fatalf("SearchText failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestFavorites(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	if err := repo.AddFavorite("0001", "barbell bench press"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	// A second add keeps a single row.
	if err := repo.AddFavorite("0001", "barbell bench press"); err != nil {
		t.Fatalf("repeat AddFavorite failed: %v", err)
	}

	fav, err := repo.IsFavorite("0001")
	if err != nil {
		t.Fatalf("IsFavorite failed: %v", err)
	}
	if !fav {
		t.Error("expected exercise to be a favorite")
	}

	list, err := repo.ListFavorites()
	if err != nil {
		t.Fatalf("ListFavorites failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 favorite, got %d", len(list))
	}

	if err := repo.RemoveFavorite("0001"); err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}
	fav, _ = repo.IsFavorite("0001")
	if fav {
		t.Error("expected favorite removed")
	}
}

func TestRecentlyUsedDedupes(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	repo.RecordUsage("0001", "barbell bench press")
	repo.RecordUsage("0002", "dumbbell curl")
	repo.RecordUsage("0001", "barbell bench press")

	recent, err := repo.RecentlyUsed(10)
	if err != nil {
		t.Fatalf("RecentlyUsed failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 deduped entries, got %d", len(recent))
	}
	seen := make(map[string]int)
	for _, u := range recent {
		seen[u.ExerciseID]++
	}
	if seen["0001"] != 1 || seen["0002"] != 1 {
		t.Errorf("expected one record per exercise, got %v", seen)
	}

	limited, err := repo.RecentlyUsed(1)
	if err != nil {
		t.Fatalf("RecentlyUsed with limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected limit 1 honored, got %d", len(limited))
	}

	if err := repo.ClearUsage(); err != nil {
		t.Fatalf("ClearUsage failed: %v", err)
	}
	recent, _ = repo.RecentlyUsed(10)
	if len(recent) != 0 {
		t.Errorf("expected empty log after clear, got %d", len(recent))
	}
}
