// ABOUTME: Tests for the singleton goals repository.
// ABOUTME: Validates shallow merge semantics and wholesale macroTargets replacement.
package repository

import (
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func TestGoalsAbsentByDefault(t *testing.T) {
	repo := NewGoalsRepository(setupTestDB(t))

	g, err := repo.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if g != nil {
		t.Errorf("expected nil goals before first set, got %+v", g)
	}
}

func TestGoalsPartialUpdatesMerge(t *testing.T) {
	repo := NewGoalsRepository(setupTestDB(t))

	if _, err := repo.Set(models.GoalsPatch{DailyCalories: floatPtr(2000)}); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	if _, err := repo.Set(models.GoalsPatch{WeightGoal: floatPtr(75)}); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	g, err := repo.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if g == nil {
		t.Fatal("expected goals record")
	}
	if g.DailyCalories == nil || *g.DailyCalories != 2000 {
		t.Errorf("dailyCalories erased by partial update: %v", g.DailyCalories)
	}
	if g.WeightGoal == nil || *g.WeightGoal != 75 {
		t.Errorf("weightGoal missing: %v", g.WeightGoal)
	}
}

func TestGoalsMacroTargetsReplacedWholesale(t *testing.T) {
	repo := NewGoalsRepository(setupTestDB(t))

	repo.Set(models.GoalsPatch{
		MacroTargets: &models.MacroTargets{Carbs: 250, Protein: 150, Fat: 70},
	})
	// A later patch with only protein replaces the whole struct;
	// carbs and fat drop to zero rather than deep-merging.
	repo.Set(models.GoalsPatch{
		MacroTargets: &models.MacroTargets{Protein: 160},
	})

	g, err := repo.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if g.MacroTargets == nil {
		t.Fatal("expected macro targets")
	}
	if g.MacroTargets.Protein != 160 {
		t.Errorf("expected protein 160, got %f", g.MacroTargets.Protein)
	}
	if g.MacroTargets.Carbs != 0 {
		t.Errorf("expected carbs replaced to 0, got %f", g.MacroTargets.Carbs)
	}
}

func TestGoalsClear(t *testing.T) {
	repo := NewGoalsRepository(setupTestDB(t))

	repo.Set(models.GoalsPatch{WorkoutGoal: intPtr(3)})
	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	g, err := repo.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if g != nil {
		t.Errorf("expected goals absent after clear, got %+v", g)
	}

	// Clearing again is a no-op.
	if err := repo.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}
