// ABOUTME: Singleton goals record for daily calorie, macro, weight, and workout targets.
// ABOUTME: Stored under a fixed well-known key; partial updates merge shallowly.
package models

// GoalsKey is the fixed key of the single goals record.
const GoalsKey = "default"

// MacroTargets holds daily macro targets in grams.
type MacroTargets struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}

// Goals is the user's target configuration. All target fields are
// optional; absent fields mean no goal is set.
type Goals struct {
	ID            string        `json:"id"`
	DailyCalories *float64      `json:"dailyCalories,omitempty"`
	MacroTargets  *MacroTargets `json:"macroTargets,omitempty"`
	WeightGoal    *float64      `json:"weightGoal,omitempty"`
	WorkoutGoal   *int          `json:"workoutGoal,omitempty"`
	UpdatedAt     int64         `json:"updatedAt"`
}

// GoalsPatch is a partial goals update. Nil fields leave the stored
// value untouched; MacroTargets is replaced wholesale when set.
type GoalsPatch struct {
	DailyCalories *float64
	MacroTargets  *MacroTargets
	WeightGoal    *float64
	WorkoutGoal   *int
}
