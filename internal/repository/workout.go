// ABOUTME: Workout repository assembling the session/exercise/set tree per date.
// ABOUTME: Owns cascade deletes and denormalized-date consistency; the store enforces neither.
package repository

import (
	"errors"
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

// WorkoutRepository stores workout sessions, exercises, and sets.
type WorkoutRepository struct {
	db *store.DB
}

// NewWorkoutRepository creates a workout repository over the given store.
func NewWorkoutRepository(db *store.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// ExerciseWithSets is an exercise with its sets attached.
type ExerciseWithSets struct {
	models.WorkoutExercise
	Sets []*models.WorkoutSet
}

// WorkoutDay is the full denormalized tree for one date. Session is nil
// when nothing has been logged that day.
type WorkoutDay struct {
	Session   *models.WorkoutSession
	Exercises []*ExerciseWithSets
}

// SetPatch is a partial set update. Nil fields keep the stored value.
type SetPatch struct {
	Weight    *float64
	Reps      *int
	Completed *bool
}

// PreviousSetsQuery finds the most recent prior occurrence of an
// exercise. Catalog id match wins; exercise name is the fallback for
// manually-typed exercises that predate catalog linkage.
type PreviousSetsQuery struct {
	CatalogExerciseID *string
	ExerciseName      string
	BeforeDate        string
}

// GetByDate reads the whole workout tree for one date in a single
// transaction. Exercises come back in creation order, sets in
// (setIndex, createdAt) order.
func (r *WorkoutRepository) GetByDate(date string) (*WorkoutDay, error) {
	day := &WorkoutDay{}
	err := r.db.View(func(txn *badger.Txn) error {
		sess, err := sessionByDate(txn, date)
		if err != nil || sess == nil {
			return err
		}
		day.Session = sess

		exs, err := exercises.GetAllByIndex(txn, "session", sess.ID)
		if err != nil {
			return err
		}
		sortExercises(exs)

		for _, ex := range exs {
			exSets, err := sets.GetAllByIndex(txn, "exercise", ex.ID)
			if err != nil {
				return err
			}
			sortSets(exSets)
			day.Exercises = append(day.Exercises, &ExerciseWithSets{WorkoutExercise: *ex, Sets: exSets})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get workout day %s: %w", date, err)
	}
	return day, nil
}

// EnsureSession returns the session for a date, creating it if absent.
// The read and the conditional add share one transaction, so calling it
// twice never creates two sessions.
func (r *WorkoutRepository) EnsureSession(date string) (*models.WorkoutSession, error) {
	var sess *models.WorkoutSession
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		sess, err = ensureSession(txn, date)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ensure session %s: %w", date, err)
	}
	return sess, nil
}

// AddExercise logs an exercise for a date, lazily creating the session.
func (r *WorkoutRepository) AddExercise(date, name string, catalogExerciseID *string) (*models.WorkoutExercise, error) {
	var ex *models.WorkoutExercise
	err := r.db.Update(func(txn *badger.Txn) error {
		sess, err := ensureSession(txn, date)
		if err != nil {
			return err
		}

		ex = models.NewWorkoutExercise(sess.ID, date, name, catalogExerciseID)
		if err := exercises.Add(txn, ex); err != nil {
			return err
		}
		return touchSession(txn, sess)
	})
	if err != nil {
		return nil, fmt.Errorf("add exercise %s: %w", name, err)
	}
	return ex, nil
}

// DeleteExercise removes an exercise and all of its sets in one
// transaction; a concurrent reader never observes a partial cascade.
// No-op if the exercise is absent.
func (r *WorkoutRepository) DeleteExercise(date, exerciseID string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		ex, err := exercises.Get(txn, exerciseID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}

		exSets, err := sets.GetAllByIndex(txn, "exercise", exerciseID)
		if err != nil {
			return err
		}
		for _, s := range exSets {
			if err := sets.Delete(txn, s.ID); err != nil {
				return err
			}
		}
		if err := exercises.Delete(txn, exerciseID); err != nil {
			return err
		}

		touchSessionByID(txn, ex.SessionID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete exercise %s: %w", exerciseID, err)
	}
	return nil
}

// AddSet appends a set to an exercise. The next setIndex is
// max(existing)+1 so indexes are never reused after a delete. Fails
// with ErrNotFound if the exercise does not exist.
func (r *WorkoutRepository) AddSet(date, exerciseID string, weight float64, reps int) (*models.WorkoutSet, error) {
	var set *models.WorkoutSet
	err := r.db.Update(func(txn *badger.Txn) error {
		ex, err := exercises.Get(txn, exerciseID)
		if err != nil {
			return err
		}

		existing, err := sets.GetAllByIndex(txn, "exercise", exerciseID)
		if err != nil {
			return err
		}
		next := 0
		for _, s := range existing {
			if s.SetIndex > next {
				next = s.SetIndex
			}
		}

		set = models.NewWorkoutSet(ex.SessionID, ex.ID, date, next+1, weight, reps)
		if err := sets.Add(txn, set); err != nil {
			return err
		}

		if err := touchExercise(txn, ex); err != nil {
			return err
		}
		touchSessionByID(txn, ex.SessionID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}
	return set, nil
}

// UpdateSet merges a partial update onto an existing set. Missing sets
// surface ErrNotFound; ancestor timestamps are touched best-effort.
func (r *WorkoutRepository) UpdateSet(setID string, patch SetPatch) (*models.WorkoutSet, error) {
	var set *models.WorkoutSet
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		set, err = sets.Get(txn, setID)
		if err != nil {
			return err
		}

		if patch.Weight != nil {
			set.Weight = *patch.Weight
		}
		if patch.Reps != nil {
			set.Reps = *patch.Reps
		}
		if patch.Completed != nil {
			set.Completed = *patch.Completed
		}
		if err := sets.Put(txn, set); err != nil {
			return err
		}

		touchAncestors(txn, set)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update set %s: %w", setID, err)
	}
	return set, nil
}

// DeleteSet removes a set by id. No-op if absent.
func (r *WorkoutRepository) DeleteSet(setID string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		set, err := sets.Get(txn, setID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		if err := sets.Delete(txn, setID); err != nil {
			return err
		}
		touchAncestors(txn, set)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete set %s: %w", setID, err)
	}
	return nil
}

// ListSessionsByDateRange returns sessions with start <= date <= end,
// ascending by date.
func (r *WorkoutRepository) ListSessionsByDateRange(start, end string) ([]*models.WorkoutSession, error) {
	var out []*models.WorkoutSession
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = sessions.GetAllByIndexRange(txn, "date", start, end)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions %s..%s: %w", start, end, err)
	}
	return out, nil
}

// GetPreviousSetsForExercise returns the sets of the most recent prior
// occurrence of an exercise, ordered by setIndex. Catalog-id history is
// preferred; name-matched history is used only when no catalog-id match
// exists. Returns nil when there is no history at all.
func (r *WorkoutRepository) GetPreviousSetsForExercise(q PreviousSetsQuery) ([]*models.WorkoutSet, error) {
	var out []*models.WorkoutSet
	err := r.db.View(func(txn *badger.Txn) error {
		var match *models.WorkoutExercise

		if q.CatalogExerciseID != nil {
			cands, err := exercises.GetAllByIndex(txn, "catalog", *q.CatalogExerciseID)
			if err != nil {
				return err
			}
			match = mostRecentBefore(cands, q.BeforeDate)
		}
		if match == nil && q.ExerciseName != "" {
			cands, err := exercises.GetAllByIndex(txn, "name", q.ExerciseName)
			if err != nil {
				return err
			}
			match = mostRecentBefore(cands, q.BeforeDate)
		}
		if match == nil {
			return nil
		}

		exSets, err := sets.GetAllByIndex(txn, "exercise", match.ID)
		if err != nil {
			return err
		}
		sortSets(exSets)
		out = exSets
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("previous sets for %s: %w", q.ExerciseName, err)
	}
	return out, nil
}

// sessionByDate returns the session for a date, or nil if none exists.
func sessionByDate(txn *badger.Txn, date string) (*models.WorkoutSession, error) {
	matches, err := sessions.GetAllByIndex(txn, "date", date)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func ensureSession(txn *badger.Txn, date string) (*models.WorkoutSession, error) {
	sess, err := sessionByDate(txn, date)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		return sess, nil
	}

	sess = models.NewWorkoutSession(date)
	if err := sessions.Add(txn, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func touchSession(txn *badger.Txn, sess *models.WorkoutSession) error {
	sess.UpdatedAt = models.NowMillis()
	return sessions.Put(txn, sess)
}

// touchSessionByID bumps a session's updatedAt, ignoring a missing
// session; child mutations proceed even when the ancestor is gone.
func touchSessionByID(txn *badger.Txn, sessionID string) {
	sess, err := sessions.Get(txn, sessionID)
	if err != nil {
		return
	}
	_ = touchSession(txn, sess)
}

func touchExercise(txn *badger.Txn, ex *models.WorkoutExercise) error {
	ex.UpdatedAt = models.NowMillis()
	return exercises.Put(txn, ex)
}

// touchAncestors bumps exercise and session updatedAt best-effort.
func touchAncestors(txn *badger.Txn, set *models.WorkoutSet) {
	if ex, err := exercises.Get(txn, set.ExerciseID); err == nil {
		_ = touchExercise(txn, ex)
	}
	touchSessionByID(txn, set.SessionID)
}

// mostRecentBefore picks the candidate with the greatest (date,
// createdAt) strictly before the given date.
func mostRecentBefore(cands []*models.WorkoutExercise, before string) *models.WorkoutExercise {
	var best *models.WorkoutExercise
	for _, c := range cands {
		if c.Date >= before {
			continue
		}
		if best == nil || c.Date > best.Date || (c.Date == best.Date && c.CreatedAt > best.CreatedAt) {
			best = c
		}
	}
	return best
}

func sortExercises(exs []*models.WorkoutExercise) {
	sort.Slice(exs, func(i, j int) bool {
		if exs[i].CreatedAt != exs[j].CreatedAt {
			return exs[i].CreatedAt < exs[j].CreatedAt
		}
		return exs[i].ID < exs[j].ID
	})
}

func sortSets(ss []*models.WorkoutSet) {
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].SetIndex != ss[j].SetIndex {
			return ss[i].SetIndex < ss[j].SetIndex
		}
		return ss[i].CreatedAt < ss[j].CreatedAt
	})
}
