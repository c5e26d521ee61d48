// ABOUTME: Daily calorie and macro totals with optimistic-entry overlay.
// ABOUTME: The overlay is functional; committed query results are never mutated in place.
package aggregate

import "github.com/harperreed/fittrack/internal/models"

// NutritionTotals is the summed calories and macros for one date.
type NutritionTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// MergeOptimistic overlays an in-flight entry onto the committed
// entries for a date. A committed entry with the same id is replaced;
// otherwise the optimistic entry is prepended as a synthetic record.
// The input slice is left untouched.
func MergeOptimistic(entries []*models.FoodEntry, optimistic *models.FoodEntry) []*models.FoodEntry {
	if optimistic == nil {
		return append([]*models.FoodEntry(nil), entries...)
	}

	merged := make([]*models.FoodEntry, 0, len(entries)+1)
	replaced := false
	for _, e := range entries {
		if e.ID == optimistic.ID {
			merged = append(merged, optimistic)
			replaced = true
			continue
		}
		merged = append(merged, e)
	}
	if !replaced {
		merged = append([]*models.FoodEntry{optimistic}, merged...)
	}
	return merged
}

// DailyTotals sums calories and macros across a date's entries.
// Absent macro fields contribute zero.
func DailyTotals(entries []*models.FoodEntry) NutritionTotals {
	var t NutritionTotals
	for _, e := range entries {
		t.Calories += e.Calories
		if e.Protein != nil {
			t.Protein += *e.Protein
		}
		if e.Carbs != nil {
			t.Carbs += *e.Carbs
		}
		if e.Fat != nil {
			t.Fat += *e.Fat
		}
	}
	return t
}
