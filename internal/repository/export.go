// ABOUTME: Full-data export and import for backup and store migration.
// ABOUTME: Snapshots every collection in one read transaction; import writes records as-is.
package repository

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// ExportData holds a complete snapshot of the local data layer.
type ExportData struct {
	Sessions  []*models.WorkoutSession      `json:"sessions,omitempty"`
	Exercises []*models.WorkoutExercise     `json:"exercises,omitempty"`
	Sets      []*models.WorkoutSet          `json:"sets,omitempty"`
	Meals     []*models.FoodEntry           `json:"meals,omitempty"`
	Metrics   []*models.MetricEntry         `json:"metrics,omitempty"`
	Goals     *models.Goals                 `json:"goals,omitempty"`
	Catalog   []*models.Exercise            `json:"catalog,omitempty"`
	Favorites []*models.FavoriteExercise    `json:"favorites,omitempty"`
	Usage     []*models.ExerciseUsageRecord `json:"usage,omitempty"`
}

// Export reads every collection within one consistent snapshot.
func Export(db *store.DB) (*ExportData, error) {
	data := &ExportData{}
	err := db.View(func(txn *badger.Txn) error {
		var err error
		if data.Sessions, err = sessions.GetAll(txn); err != nil {
			return err
		}
		if data.Exercises, err = exercises.GetAll(txn); err != nil {
			return err
		}
		if data.Sets, err = sets.GetAll(txn); err != nil {
			return err
		}
		if data.Meals, err = meals.GetAll(txn); err != nil {
			return err
		}
		if data.Metrics, err = metrics.GetAll(txn); err != nil {
			return err
		}
		g, err := goals.Get(txn, models.GoalsKey)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		data.Goals = g
		if data.Catalog, err = catalog.GetAll(txn); err != nil {
			return err
		}
		if data.Favorites, err = favorites.GetAll(txn); err != nil {
			return err
		}
		data.Usage, err = usage.GetAll(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("export data: %w", err)
	}
	return data, nil
}

// Import writes a snapshot into the store, upserting record by record.
// The destination should normally be empty; existing records with
// matching ids are overwritten.
func Import(db *store.DB, data *ExportData) error {
	err := db.Update(func(txn *badger.Txn) error {
		for _, s := range data.Sessions {
			if err := sessions.Put(txn, s); err != nil {
				return err
			}
		}
		for _, e := range data.Exercises {
			if err := exercises.Put(txn, e); err != nil {
				return err
			}
		}
		for _, s := range data.Sets {
			if err := sets.Put(txn, s); err != nil {
				return err
			}
		}
		for _, m := range data.Meals {
			if err := meals.Put(txn, m); err != nil {
				return err
			}
		}
		for _, m := range data.Metrics {
			if err := metrics.Put(txn, m); err != nil {
				return err
			}
		}
		if data.Goals != nil {
			if err := goals.Put(txn, data.Goals); err != nil {
				return err
			}
		}
		for _, e := range data.Catalog {
			if err := catalog.Put(txn, e); err != nil {
				return err
			}
		}
		for _, f := range data.Favorites {
			if err := favorites.Put(txn, f); err != nil {
				return err
			}
		}
		for _, u := range data.Usage {
			if err := usage.Put(txn, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	return nil
}
