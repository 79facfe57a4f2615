// internal/nutrition/totals.go
package nutrition

import (
	"diet-client/internal/models"
)

// RecordTotals sums the macro quantities of a single meal's food items.
// The result is authoritative: any aggregate the backend put on the
// record is discarded in favor of this sum.
func RecordTotals(foods []models.FoodItem) models.Totals {
	var t models.Totals
	for _, food := range foods {
		t.Kcal += food.Calories
		t.Carbs += food.Carbohydrate
		t.Protein += food.Protein
		t.Fat += food.Fat
	}
	return t
}

// SumDay aggregates a day's records into day totals. Kcal is taken from
// each record's recomputed TotalKcal; the gram macros are re-reduced
// from the food lists directly, not from the per-record totals. The two
// paths are kept separate on purpose so they can be tested against each
// other.
func SumDay(records []models.MealRecord) models.DayTotals {
	var day models.DayTotals
	for _, record := range records {
		day.Kcal += record.TotalKcal
		for _, food := range record.Foods {
			day.Carbs += food.Carbohydrate
			day.Protein += food.Protein
			day.Fat += food.Fat
		}
	}
	return day
}
