package nutrition

import (
	"math"
	"testing"

	"diet-client/internal/models"
)

func TestRecordTotals(t *testing.T) {
	tests := []struct {
		name  string
		foods []models.FoodItem
		want  models.Totals
	}{
		{
			name: "sums all macros",
			foods: []models.FoodItem{
				{Calories: 200, Carbohydrate: 30, Protein: 5, Fat: 2},
				{Calories: 150, Carbohydrate: 20, Protein: 10, Fat: 6},
			},
			want: models.Totals{Kcal: 350, Carbs: 50, Protein: 15, Fat: 8},
		},
		{
			name: "missing values count as zero",
			foods: []models.FoodItem{
				{Calories: 100},
				{Carbohydrate: 12},
			},
			want: models.Totals{Kcal: 100, Carbs: 12},
		},
		{
			name:  "no foods",
			foods: nil,
			want:  models.Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecordTotals(tt.foods)
			if got != tt.want {
				t.Errorf("RecordTotals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSumDay(t *testing.T) {
	records := []models.MealRecord{
		{
			MealType:  models.MealTypeBreakfast,
			TotalKcal: 200,
			Foods: []models.FoodItem{
				{Calories: 200, Carbohydrate: 30, Protein: 5, Fat: 2},
			},
		},
		{
			MealType:  models.MealTypeSnack,
			TotalKcal: 100,
			Foods: []models.FoodItem{
				{Calories: 100, Carbohydrate: 10, Protein: 1, Fat: 1},
			},
		},
	}

	got := SumDay(records)
	want := models.DayTotals{Kcal: 300, Carbs: 40, Protein: 6, Fat: 3}
	if got != want {
		t.Errorf("SumDay() = %+v, want %+v", got, want)
	}
}

// SumDay takes kcal from the per-record totals but re-reduces the gram
// macros from the food lists, so a divergent per-record aggregate must
// show up in kcal only.
func TestSumDayIgnoresRecordGramAggregates(t *testing.T) {
	records := []models.MealRecord{
		{
			TotalKcal:    500, // deliberately inconsistent with foods
			TotalCarbs:   999,
			TotalProtein: 999,
			TotalFat:     999,
			Foods: []models.FoodItem{
				{Calories: 200, Carbohydrate: 30, Protein: 5, Fat: 2},
			},
		},
	}

	got := SumDay(records)
	if got.Kcal != 500 {
		t.Errorf("Kcal = %v, want 500 (from record total)", got.Kcal)
	}
	if got.Carbs != 30 || got.Protein != 5 || got.Fat != 2 {
		t.Errorf("gram macros = %v/%v/%v, want 30/5/2 (from foods)", got.Carbs, got.Protein, got.Fat)
	}
}

func TestSumDayFractionalValues(t *testing.T) {
	records := []models.MealRecord{
		{TotalKcal: 123.4, Foods: []models.FoodItem{{Carbohydrate: 0.1, Protein: 0.2, Fat: 0.3}}},
		{TotalKcal: 0.6, Foods: []models.FoodItem{{Carbohydrate: 0.2, Protein: 0.2, Fat: 0.2}}},
	}

	got := SumDay(records)
	if math.Abs(got.Kcal-124.0) > 1e-9 {
		t.Errorf("Kcal = %v, want 124.0", got.Kcal)
	}
	if math.Abs(got.Carbs-0.3) > 1e-9 {
		t.Errorf("Carbs = %v, want 0.3", got.Carbs)
	}
}
