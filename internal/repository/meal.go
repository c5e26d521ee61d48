// ABOUTME: Meal repository for food entries keyed by id and indexed by date.
// ABOUTME: Updates merge partially; date changes require callers to invalidate both dates.
package repository

import (
	"errors"
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// MealRepository stores food entries.
type MealRepository struct {
	db *store.DB
}

// NewMealRepository creates a meal repository over the given store.
func NewMealRepository(db *store.DB) *MealRepository {
	return &MealRepository{db: db}
}

// FoodEntryPatch is a partial food entry update. Nil fields keep the
// stored value.
type FoodEntryPatch struct {
	Date     *string
	MealType *models.MealType
	Name     *string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Quantity *float64
}

// Create stores a new food entry.
func (r *MealRepository) Create(entry *models.FoodEntry) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return meals.Add(txn, entry)
	})
	if err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

// Update merges a partial update onto an existing entry and bumps its
// updatedAt. Missing entries surface ErrNotFound.
func (r *MealRepository) Update(id string, patch FoodEntryPatch) (*models.FoodEntry, error) {
	var entry *models.FoodEntry
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		entry, err = meals.Get(txn, id)
		if err != nil {
			return err
		}

		if patch.Date != nil {
			entry.Date = *patch.Date
		}
		if patch.MealType != nil {
			entry.MealType = *patch.MealType
		}
		if patch.Name != nil {
			entry.Name = *patch.Name
		}
		if patch.Calories != nil {
			entry.Calories = *patch.Calories
		}
		if patch.Protein != nil {
			entry.Protein = patch.Protein
		}
		if patch.Carbs != nil {
			entry.Carbs = patch.Carbs
		}
		if patch.Fat != nil {
			entry.Fat = patch.Fat
		}
		if patch.Quantity != nil {
			entry.Quantity = patch.Quantity
		}
		entry.UpdatedAt = models.NowMillis()

		return meals.Put(txn, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("update meal %s: %w", id, err)
	}
	return entry, nil
}

// Delete removes an entry by id. No-op if absent.
func (r *MealRepository) Delete(id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return meals.Delete(txn, id)
	})
	if err != nil {
		return fmt.Errorf("delete meal %s: %w", id, err)
	}
	return nil
}

// GetByID retrieves an entry by id.
func (r *MealRepository) GetByID(id string) (*models.FoodEntry, error) {
	var entry *models.FoodEntry
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		entry, err = meals.Get(txn, id)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("get meal %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get meal %s: %w", id, err)
	}
	return entry, nil
}

// ListByDate returns all entries for one date, oldest first.
func (r *MealRepository) ListByDate(date string) ([]*models.FoodEntry, error) {
	var out []*models.FoodEntry
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = meals.GetAllByIndex(txn, "date", date)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list meals %s: %w", date, err)
	}
	sortMeals(out)
	return out, nil
}

// ListByDateRange returns entries with start <= date <= end, ordered by
// date then creation time.
func (r *MealRepository) ListByDateRange(start, end string) ([]*models.FoodEntry, error) {
	var out []*models.FoodEntry
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = meals.GetAllByIndexRange(txn, "date", start, end)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list meals %s..%s: %w", start, end, err)
	}
	sortMeals(out)
	return out, nil
}

func sortMeals(entries []*models.FoodEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].CreatedAt < entries[j].CreatedAt
	})
}
