// internal/meal/normalize.go
package meal

import (
	"diet-client/internal/models"
	"diet-client/internal/nutrition"
)

// Normalize rewrites a raw backend record into its display form:
//   - the meal type code becomes a display label (unmapped codes pass
//     through unchanged),
//   - the macro aggregates are recomputed from the food items,
//     overriding whatever the backend sent,
//   - the effective timestamp is resolved by precedence: ModifiedAt,
//     then CreateDate, then CreatedDate, then Date — first non-empty.
func Normalize(record models.MealRecord) models.MealRecord {
	record.Type = models.MealTypeLabel(record.MealType)

	totals := nutrition.RecordTotals(record.Foods)
	record.TotalKcal = totals.Kcal
	record.TotalCarbs = totals.Carbs
	record.TotalProtein = totals.Protein
	record.TotalFat = totals.Fat

	record.EffectiveDate = firstNonEmpty(
		record.ModifiedAt,
		record.CreateDate,
		record.CreatedDate,
		record.Date,
	)
	// Display code reads CreateDate, so it carries the resolved value.
	record.CreateDate = record.EffectiveDate

	return record
}

// NormalizeAll normalizes every record of a fetch result.
func NormalizeAll(records []models.MealRecord) []models.MealRecord {
	normalized := make([]models.MealRecord, len(records))
	for i, record := range records {
		normalized[i] = Normalize(record)
	}
	return normalized
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
