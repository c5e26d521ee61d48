// ABOUTME: Workout session, exercise, and set models for daily training logs.
// ABOUTME: Sessions own exercises own sets; children carry a denormalized date.
package models

import "github.com/google/uuid"

// WorkoutSession is the per-date container for everything logged that day.
// At most one session exists per date; the repository enforces this.
type WorkoutSession struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// NewWorkoutSession creates a session for the given date.
func NewWorkoutSession(date string) *WorkoutSession {
	now := NowMillis()
	return &WorkoutSession{
		ID:        uuid.NewString(),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WorkoutExercise is one exercise logged within a session.
// Date is denormalized from the owning session and must always match it.
type WorkoutExercise struct {
	ID                string  `json:"id"`
	SessionID         string  `json:"sessionId"`
	Date              string  `json:"date"`
	Name              string  `json:"name"`
	CatalogExerciseID *string `json:"catalogExerciseId,omitempty"`
	CreatedAt         int64   `json:"createdAt"`
	UpdatedAt         int64   `json:"updatedAt"`
}

// NewWorkoutExercise creates an exercise under the given session.
func NewWorkoutExercise(sessionID, date, name string, catalogExerciseID *string) *WorkoutExercise {
	now := NowMillis()
	return &WorkoutExercise{
		ID:                uuid.NewString(),
		SessionID:         sessionID,
		Date:              date,
		Name:              name,
		CatalogExerciseID: catalogExerciseID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// WorkoutSet is a single set of an exercise. SetIndex values per exercise
// are strictly increasing, assigned as max(existing)+1, and never reused.
type WorkoutSet struct {
	ID         string  `json:"id"`
	SessionID  string  `json:"sessionId"`
	ExerciseID string  `json:"exerciseId"`
	Date       string  `json:"date"`
	SetIndex   int     `json:"setIndex"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Completed  bool    `json:"completed"`
	CreatedAt  int64   `json:"createdAt"`
}

// NewWorkoutSet creates a set under the given exercise.
func NewWorkoutSet(sessionID, exerciseID, date string, setIndex int, weight float64, reps int) *WorkoutSet {
	return &WorkoutSet{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		Date:       date,
		SetIndex:   setIndex,
		Weight:     weight,
		Reps:       reps,
		CreatedAt:  NowMillis(),
	}
}
