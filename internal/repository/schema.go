// ABOUTME: Collection and index definitions binding domain models to the record store.
// ABOUTME: EnsureSchema upgrades older on-disk stores by reindexing, create-if-absent.
package repository

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// schemaVersion is bumped whenever a collection or index is added.
// Upgrades only ever add; reindexing an already-current store is a no-op.
const schemaVersion = 2

var sessions = store.Collection[models.WorkoutSession]{
	Name: "sessions",
	Key:  func(s *models.WorkoutSession) string { return s.ID },
	Indexes: []store.Index[models.WorkoutSession]{
		{Name: "date", Value: func(s *models.WorkoutSession) string { return s.Date }},
	},
}

var exercises = store.Collection[models.WorkoutExercise]{
	Name: "exercises",
	Key:  func(e *models.WorkoutExercise) string { return e.ID },
	Indexes: []store.Index[models.WorkoutExercise]{
		{Name: "session", Value: func(e *models.WorkoutExercise) string { return e.SessionID }},
		{Name: "name", Value: func(e *models.WorkoutExercise) string { return e.Name }},
		{Name: "catalog", Value: func(e *models.WorkoutExercise) string {
			if e.CatalogExerciseID == nil {
				return ""
			}
			return *e.CatalogExerciseID
		}},
	},
}

var sets = store.Collection[models.WorkoutSet]{
	Name: "sets",
	Key:  func(s *models.WorkoutSet) string { return s.ID },
	Indexes: []store.Index[models.WorkoutSet]{
		{Name: "exercise", Value: func(s *models.WorkoutSet) string { return s.ExerciseID }},
		{Name: "session", Value: func(s *models.WorkoutSet) string { return s.SessionID }},
	},
}

var meals = store.Collection[models.FoodEntry]{
	Name: "meals",
	Key:  func(f *models.FoodEntry) string { return f.ID },
	Indexes: []store.Index[models.FoodEntry]{
		{Name: "date", Value: func(f *models.FoodEntry) string { return f.Date }},
	},
}

var metrics = store.Collection[models.MetricEntry]{
	Name: "metrics",
	Key:  func(m *models.MetricEntry) string { return m.ID },
	Indexes: []store.Index[models.MetricEntry]{
		{Name: "type", Value: func(m *models.MetricEntry) string { return string(m.Type) }},
	},
}

var goals = store.Collection[models.Goals]{
	Name: "goals",
	Key:  func(g *models.Goals) string { return g.ID },
}

var catalog = store.Collection[models.Exercise]{
	Name: "catalog",
	Key:  func(e *models.Exercise) string { return e.ID },
	Indexes: []store.Index[models.Exercise]{
		{Name: "bodyPart", Value: func(e *models.Exercise) string { return e.BodyPart }},
		{Name: "target", Value: func(e *models.Exercise) string { return e.Target }},
		{Name: "equipment", Value: func(e *models.Exercise) string { return e.Equipment }},
	},
}

var favorites = store.Collection[models.FavoriteExercise]{
	Name: "favorites",
	Key:  func(f *models.FavoriteExercise) string { return f.ExerciseID },
}

var usage = store.Collection[models.ExerciseUsageRecord]{
	Name: "usage",
	Key:  func(u *models.ExerciseUsageRecord) string { return u.ID },
	Indexes: []store.Index[models.ExerciseUsageRecord]{
		{Name: "exercise", Value: func(u *models.ExerciseUsageRecord) string { return u.ExerciseID }},
	},
}

// EnsureSchema brings a store's persisted schema up to the current
// version. Reopening a store written at an older version rebuilds index
// entries for every collection; no record data is touched.
func EnsureSchema(db *store.DB) error {
	return db.Update(func(txn *badger.Txn) error {
		v, err := store.SchemaVersion(txn)
		if err != nil {
			return err
		}
		if v >= schemaVersion {
			return nil
		}

		if err := sessions.Reindex(txn); err != nil {
			return fmt.Errorf("reindex sessions: %w", err)
		}
		if err := exercises.Reindex(txn); err != nil {
			return fmt.Errorf("reindex exercises: %w", err)
		}
		if err := sets.Reindex(txn); err != nil {
			return fmt.Errorf("reindex sets: %w", err)
		}
		if err := meals.Reindex(txn); err != nil {
			return fmt.Errorf("reindex meals: %w", err)
		}
		if err := metrics.Reindex(txn); err != nil {
			return fmt.Errorf("reindex metrics: %w", err)
		}
		if err := catalog.Reindex(txn); err != nil {
			return fmt.Errorf("reindex catalog: %w", err)
		}
		if err := usage.Reindex(txn); err != nil {
			return fmt.Errorf("reindex usage: %w", err)
		}

		return store.SetSchemaVersion(txn, schemaVersion)
	})
}
