// ABOUTME: Seed loader for the bundled exercise dataset.
// ABOUTME: Bulk-upserts a JSON array of catalog exercises into the local cache.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/repository"
)

// ImportSeed reads a JSON array of catalog exercises and upserts them
// into the cache. Safe to run on every startup: ids are stable, so
// re-importing the same dataset is idempotent.
func ImportSeed(cache repository.ExerciseStore, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read seed data: %w", err)
	}

	var exs []*models.Exercise
	if err := json.Unmarshal(data, &exs); err != nil {
		return 0, fmt.Errorf("parse seed data: %w", err)
	}

	if err := cache.BulkUpsert(exs); err != nil {
		return 0, fmt.Errorf("import seed data: %w", err)
	}
	return len(exs), nil
}
