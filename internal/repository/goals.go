// ABOUTME: Goals repository for the singleton targets record.
// ABOUTME: Set merges shallowly onto the stored record; macroTargets is replaced wholesale.
package repository

import (
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// GoalsRepository stores the single goals record under a fixed key.
type GoalsRepository struct {
	db *store.DB
}

// NewGoalsRepository creates a goals repository over the given store.
func NewGoalsRepository(db *store.DB) *GoalsRepository {
	return &GoalsRepository{db: db}
}

// Get returns the goals record, or nil when none has been set.
func (r *GoalsRepository) Get() (*models.Goals, error) {
	var g *models.Goals
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		g, err = goals.Get(txn, models.GoalsKey)
		if errors.Is(err, store.ErrNotFound) {
			g = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}
	return g, nil
}

// Set merges a partial update onto the existing record, creating it on
// first call. Nil patch fields leave prior values untouched.
func (r *GoalsRepository) Set(patch models.GoalsPatch) (*models.Goals, error) {
	var g *models.Goals
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		g, err = goals.Get(txn, models.GoalsKey)
		if errors.Is(err, store.ErrNotFound) {
			g = &models.Goals{ID: models.GoalsKey}
		} else if err != nil {
			return err
		}

		if patch.DailyCalories != nil {
			g.DailyCalories = patch.DailyCalories
		}
		if patch.MacroTargets != nil {
			g.MacroTargets = patch.MacroTargets
		}
		if patch.WeightGoal != nil {
			g.WeightGoal = patch.WeightGoal
		}
		if patch.WorkoutGoal != nil {
			g.WorkoutGoal = patch.WorkoutGoal
		}
		g.UpdatedAt = models.NowMillis()

		return goals.Put(txn, g)
	})
	if err != nil {
		return nil, fmt.Errorf("set goals: %w", err)
	}
	return g, nil
}

// Clear resets goals to absent. No-op if never set.
func (r *GoalsRepository) Clear() error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return goals.Delete(txn, models.GoalsKey)
	})
	if err != nil {
		return fmt.Errorf("clear goals: %w", err)
	}
	return nil
}
