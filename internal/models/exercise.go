// ABOUTME: Catalog exercise, favorite, and usage-log models.
// ABOUTME: Catalog ids are stable across the local cache and the remote source.
package models

import "github.com/google/uuid"

// Exercise is a reference exercise definition from the shared catalog,
// distinct from a per-workout logged exercise instance.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Target           string   `json:"target"`
	Equipment        string   `json:"equipment"`
	GifURL           string   `json:"gifUrl,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
}

// FavoriteExercise marks a catalog exercise as a favorite.
// At most one row exists per exercise id.
type FavoriteExercise struct {
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	CreatedAt    int64  `json:"createdAt"`
}

// NewFavoriteExercise creates a favorite row for the given exercise.
func NewFavoriteExercise(exerciseID, exerciseName string) *FavoriteExercise {
	return &FavoriteExercise{
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
		CreatedAt:    NowMillis(),
	}
}

// ExerciseUsageRecord is one entry in the append-only usage log, written
// each time an exercise is logged into a workout.
type ExerciseUsageRecord struct {
	ID           string `json:"id"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	UsedAt       int64  `json:"usedAt"`
}

// NewExerciseUsageRecord creates a usage record stamped with the current time.
func NewExerciseUsageRecord(exerciseID, exerciseName string) *ExerciseUsageRecord {
	return &ExerciseUsageRecord{
		ID:           uuid.NewString(),
		ExerciseID:   exerciseID,
		ExerciseName: exerciseName,
		UsedAt:       NowMillis(),
	}
}
