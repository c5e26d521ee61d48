// ABOUTME: Exercise catalog cache, favorites, and usage-log repository.
// ABOUTME: Free-text search matches query tokens against name/target/bodyPart/equipment.
package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// ExerciseRepository stores the local exercise catalog cache plus
// user favorites and the exercise usage log.
type ExerciseRepository struct {
	db *store.DB
}

// NewExerciseRepository creates an exercise repository over the given store.
func NewExerciseRepository(db *store.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// BulkUpsert inserts or replaces catalog exercises in one transaction.
// Catalog records are never deleted by the app, only overwritten.
func (r *ExerciseRepository) BulkUpsert(exs []*models.Exercise) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		for _, ex := range exs {
			if err := catalog.Put(txn, ex); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bulk upsert catalog: %w", err)
	}
	return nil
}

// GetByID retrieves a catalog exercise by id.
func (r *ExerciseRepository) GetByID(id string) (*models.Exercise, error) {
	var ex *models.Exercise
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		ex, err = catalog.Get(txn, id)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("catalog exercise %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get catalog exercise %s: %w", id, err)
	}
	return ex, nil
}

// ListByBodyPart returns catalog exercises for one body part, by name.
func (r *ExerciseRepository) ListByBodyPart(bodyPart string) ([]*models.Exercise, error) {
	return r.listByIndex("bodyPart", bodyPart)
}

// ListByTarget returns catalog exercises for one target muscle, by name.
func (r *ExerciseRepository) ListByTarget(target string) ([]*models.Exercise, error) {
	return r.listByIndex("target", target)
}

// ListByEquipment returns catalog exercises for one equipment type, by name.
func (r *ExerciseRepository) ListByEquipment(equipment string) ([]*models.Exercise, error) {
	return r.listByIndex("equipment", equipment)
}

func (r *ExerciseRepository) listByIndex(index, value string) ([]*models.Exercise, error) {
	var out []*models.Exercise
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = catalog.GetAllByIndex(txn, index, value)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list catalog by %s=%s: %w", index, value, err)
	}
	sortCatalog(out)
	return out, nil
}

// SearchText matches every query token case-insensitively against the
// concatenation of name, target, bodyPart, and equipment.
func (r *ExerciseRepository) SearchText(query string) ([]*models.Exercise, error) {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil, nil
	}

	var out []*models.Exercise
	err := r.db.View(func(txn *badger.Txn) error {
		all, err := catalog.GetAll(txn)
		if err != nil {
			return err
		}
		for _, ex := range all {
			haystack := strings.ToLower(ex.Name + " " + ex.Target + " " + ex.BodyPart + " " + ex.Equipment)
			matched := true
			for _, tok := range tokens {
				if !strings.Contains(haystack, tok) {
					matched = false
					break
				}
			}
			if matched {
				out = append(out, ex)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search catalog %q: %w", query, err)
	}
	sortCatalog(out)
	return out, nil
}

// Count returns the number of cached catalog exercises.
func (r *ExerciseRepository) Count() (int, error) {
	var n int
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		n, err = catalog.Count(txn)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	return n, nil
}

// AddFavorite marks an exercise as a favorite. Re-adding an existing
// favorite keeps the original row.
func (r *ExerciseRepository) AddFavorite(exerciseID, exerciseName string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := favorites.Get(txn, exerciseID); err == nil {
			return nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return favorites.Add(txn, models.NewFavoriteExercise(exerciseID, exerciseName))
	})
	if err != nil {
		return fmt.Errorf("add favorite %s: %w", exerciseID, err)
	}
	return nil
}

// RemoveFavorite unmarks a favorite. No-op if absent.
func (r *ExerciseRepository) RemoveFavorite(exerciseID string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return favorites.Delete(txn, exerciseID)
	})
	if err != nil {
		return fmt.Errorf("remove favorite %s: %w", exerciseID, err)
	}
	return nil
}

// ListFavorites returns all favorites, most recently added first.
func (r *ExerciseRepository) ListFavorites() ([]*models.FavoriteExercise, error) {
	var out []*models.FavoriteExercise
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = favorites.GetAll(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

// IsFavorite reports whether an exercise is marked as a favorite.
func (r *ExerciseRepository) IsFavorite(exerciseID string) (bool, error) {
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := favorites.Get(txn, exerciseID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err == nil {
			found = true
		}
		return err
	})
	if err != nil {
		return false, fmt.Errorf("check favorite %s: %w", exerciseID, err)
	}
	return found, nil
}

// RecordUsage appends to the usage log; called each time an exercise is
// logged into a workout.
func (r *ExerciseRepository) RecordUsage(exerciseID, exerciseName string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return usage.Add(txn, models.NewExerciseUsageRecord(exerciseID, exerciseName))
	})
	if err != nil {
		return fmt.Errorf("record usage %s: %w", exerciseID, err)
	}
	return nil
}

// RecentlyUsed returns the usage log deduped to the most recent record
// per exercise, newest first, capped at limit (0 means no cap).
func (r *ExerciseRepository) RecentlyUsed(limit int) ([]*models.ExerciseUsageRecord, error) {
	var all []*models.ExerciseUsageRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		all, err = usage.GetAll(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list usage: %w", err)
	}

	latest := make(map[string]*models.ExerciseUsageRecord)
	for _, u := range all {
		if cur, ok := latest[u.ExerciseID]; !ok || u.UsedAt > cur.UsedAt {
			latest[u.ExerciseID] = u
		}
	}

	out := make([]*models.ExerciseUsageRecord, 0, len(latest))
	for _, u := range latest {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UsedAt > out[j].UsedAt })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ClearUsage removes the whole usage log.
func (r *ExerciseRepository) ClearUsage() error {
	err := r.db.Update(func(txn *badger.Txn) error {
		all, err := usage.GetAll(txn)
		if err != nil {
			return err
		}
		for _, u := range all {
			if err := usage.Delete(txn, u.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear usage: %w", err)
	}
	return nil
}

func sortCatalog(exs []*models.Exercise) {
	sort.Slice(exs, func(i, j int) bool { return exs[i].Name < exs[j].Name })
}
