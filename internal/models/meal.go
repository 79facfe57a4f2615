// internal/models/meal.go
package models

// Backend meal type codes.
const (
	MealTypeBreakfast = "BREAKFAST"
	MealTypeLunch     = "LUNCH"
	MealTypeDinner    = "DINNER"
	MealTypeSnack     = "SNACK"
)

// MealTypeLabels maps backend meal type codes to display labels.
// Codes outside the table pass through unchanged.
var MealTypeLabels = map[string]string{
	MealTypeBreakfast: "아침",
	MealTypeLunch:     "점심",
	MealTypeDinner:    "저녁",
	MealTypeSnack:     "간식",
}

// MealTypeLabel returns the display label for a backend meal type code.
func MealTypeLabel(code string) string {
	if label, ok := MealTypeLabels[code]; ok {
		return label
	}
	return code
}

// FoodItem is a single food entry within a meal. Macro quantities are
// grams except Calories; fields missing from the payload decode to zero.
type FoodItem struct {
	Name         string  `json:"foodName"`
	Calories     float64 `json:"calories"`
	Carbohydrate float64 `json:"carbohydrate"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
}

// MealRecord is one logged meal. The backend emits either MealID or ID
// depending on the endpoint; Key() resolves the effective identifier.
//
// The candidate timestamp fields are kept as opaque strings: the client
// only selects among them (ModifiedAt first, then the creation fields,
// then Date) and never parses or reorders them.
type MealRecord struct {
	MealID   int64  `json:"mealId"`
	ID       int64  `json:"id"`
	MealType string `json:"mealType"`
	// Type is the display label; empty until normalized.
	Type  string     `json:"type,omitempty"`
	Foods []FoodItem `json:"foods"`

	ModifiedAt  string `json:"modifiedAt"`
	CreateDate  string `json:"createDate"`
	CreatedDate string `json:"createdDate"`
	Date        string `json:"date"`
	// EffectiveDate is the resolved timestamp; empty until normalized.
	EffectiveDate string `json:"-"`

	// Recomputed aggregates. Whatever aggregate fields the backend sends
	// are discarded; these are always rebuilt from Foods.
	TotalKcal    float64 `json:"totalKcal"`
	TotalCarbs   float64 `json:"totalCarbs"`
	TotalProtein float64 `json:"totalProtein"`
	TotalFat     float64 `json:"totalFat"`

	ImageURL string `json:"imageUrl"`
}

// Key returns the record identifier, preferring MealID over ID.
func (r *MealRecord) Key() int64 {
	if r.MealID != 0 {
		return r.MealID
	}
	return r.ID
}

// Totals holds macro sums for a single record.
type Totals struct {
	Kcal    float64
	Carbs   float64
	Protein float64
	Fat     float64
}

// DayTotals holds macro sums across all meals of one calendar date.
// It is derived state: recomputed on every load, never mutated in place.
type DayTotals struct {
	Kcal    float64 `json:"totalKcal"`
	Carbs   float64 `json:"totalCarbs"`
	Protein float64 `json:"totalProtein"`
	Fat     float64 `json:"totalFat"`
}
