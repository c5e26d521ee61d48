// ABOUTME: Repository interfaces for the health data core.
// ABOUTME: An implementation against the hosted backend must be a drop-in replacement.
package repository

import (
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// ErrNotFound reports an operation on a record that does not exist.
// Deletes are exempt: they are idempotent no-ops on missing records.
var ErrNotFound = store.ErrNotFound

// WorkoutStore is the contract for workout session/exercise/set storage.
type WorkoutStore interface {
	GetByDate(date string) (*WorkoutDay, error)
	EnsureSession(date string) (*models.WorkoutSession, error)
	AddExercise(date, name string, catalogExerciseID *string) (*models.WorkoutExercise, error)
	DeleteExercise(date, exerciseID string) error
	AddSet(date, exerciseID string, weight float64, reps int) (*models.WorkoutSet, error)
	UpdateSet(setID string, patch SetPatch) (*models.WorkoutSet, error)
	DeleteSet(setID string) error
	ListSessionsByDateRange(start, end string) ([]*models.WorkoutSession, error)
	GetPreviousSetsForExercise(q PreviousSetsQuery) ([]*models.WorkoutSet, error)
}

// MealStore is the contract for food entry storage.
type MealStore interface {
	Create(entry *models.FoodEntry) error
	Update(id string, patch FoodEntryPatch) (*models.FoodEntry, error)
	Delete(id string) error
	GetByID(id string) (*models.FoodEntry, error)
	ListByDate(date string) ([]*models.FoodEntry, error)
	ListByDateRange(start, end string) ([]*models.FoodEntry, error)
}

// MetricStore is the contract for body metric storage.
type MetricStore interface {
	Create(entry *models.MetricEntry) error
	Update(id string, patch MetricEntryPatch) (*models.MetricEntry, error)
	Delete(id string) error
	ListByType(metricType models.MetricType) ([]*models.MetricEntry, error)
	GetLatestByType(metricType models.MetricType) (*models.MetricEntry, error)
}

// GoalsStore is the contract for the singleton goals record.
type GoalsStore interface {
	Get() (*models.Goals, error)
	Set(patch models.GoalsPatch) (*models.Goals, error)
	Clear() error
}

// ExerciseStore is the contract for the local exercise catalog cache,
// favorites, and the usage log.
type ExerciseStore interface {
	BulkUpsert(exs []*models.Exercise) error
	GetByID(id string) (*models.Exercise, error)
	ListByBodyPart(bodyPart string) ([]*models.Exercise, error)
	ListByTarget(target string) ([]*models.Exercise, error)
	ListByEquipment(equipment string) ([]*models.Exercise, error)
	SearchText(query string) ([]*models.Exercise, error)
	Count() (int, error)

	AddFavorite(exerciseID, exerciseName string) error
	RemoveFavorite(exerciseID string) error
	ListFavorites() ([]*models.FavoriteExercise, error)
	IsFavorite(exerciseID string) (bool, error)

	RecordUsage(exerciseID, exerciseName string) error
	RecentlyUsed(limit int) ([]*models.ExerciseUsageRecord, error)
	ClearUsage() error
}

var (
	_ WorkoutStore  = (*WorkoutRepository)(nil)
	_ MealStore     = (*MealRepository)(nil)
	_ MetricStore   = (*MetricRepository)(nil)
	_ GoalsStore    = (*GoalsRepository)(nil)
	_ ExerciseStore = (*ExerciseRepository)(nil)
)
