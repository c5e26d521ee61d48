// ABOUTME: Shared test helpers for repository tests.
// ABOUTME: Provides setupTestDB for isolated schema-initialized stores.
package repository

import (
	"testing"

	"github.com/harperreed/fittrack/internal/store"
)

func setupTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := EnsureSchema(db); err != nil {
		t.Fatalf("failed to ensure schema: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }
