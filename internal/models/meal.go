// ABOUTME: Food entry model for meal logging with calories and macros.
// ABOUTME: Entries have no parent aggregate; they are keyed by id and indexed by date.
package models

import "github.com/google/uuid"

// MealType identifies which meal of the day an entry belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes lists the valid meal types.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// FoodEntry is a single logged food item. Calories are required;
// macros and quantity are optional.
type FoodEntry struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	MealType  MealType `json:"mealType"`
	Name      string   `json:"name"`
	Calories  float64  `json:"calories"`
	Protein   *float64 `json:"protein,omitempty"`
	Carbs     *float64 `json:"carbs,omitempty"`
	Fat       *float64 `json:"fat,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

// NewFoodEntry creates a food entry for the given date and meal.
func NewFoodEntry(date string, mealType MealType, name string, calories float64) *FoodEntry {
	now := NowMillis()
	return &FoodEntry{
		ID:        uuid.NewString(),
		Date:      date,
		MealType:  mealType,
		Name:      name,
		Calories:  calories,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithMacros sets protein, carbs, and fat grams.
func (f *FoodEntry) WithMacros(protein, carbs, fat float64) *FoodEntry {
	f.Protein = &protein
	f.Carbs = &carbs
	f.Fat = &fat
	return f
}

// WithQuantity sets the serving quantity.
func (f *FoodEntry) WithQuantity(quantity float64) *FoodEntry {
	f.Quantity = &quantity
	return f
}
