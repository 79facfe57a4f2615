// internal/meal/viewmodel.go
package meal

import (
	"context"
	"sync"
	"time"

	"diet-client/internal/models"
	"diet-client/internal/notify"
	"diet-client/internal/nutrition"
	"diet-client/pkg/logger"
)

// ViewModel holds the meal view state for one member: the selected
// date, the normalized records for that date and their day totals.
//
// Concurrent Load calls are not sequenced: the last response to write
// wins, whatever order the requests went out in. Rapid date changes can
// therefore briefly show a stale day until the final load lands.
type ViewModel struct {
	client   *Client
	logger   *logger.Logger
	memberID int64

	mu           sync.Mutex
	date         time.Time
	records      []models.MealRecord
	totals       models.DayTotals
	loading      bool
	errMsg       string
	onDateChange func(time.Time)
}

func NewViewModel(client *Client, memberID int64, date time.Time, l *logger.Logger) *ViewModel {
	return &ViewModel{
		client:   client,
		logger:   l,
		memberID: memberID,
		date:     date,
	}
}

// SetOnDateChange registers the hook fired by ChangeDate. The hook is
// where callers trigger a reload; ChangeDate itself never fetches.
func (vm *ViewModel) SetOnDateChange(fn func(time.Time)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.onDateChange = fn
}

// Load fetches and recomputes the selected date's meals. On failure the
// error state is set and previously loaded records are left in place;
// the loading and error flags decide what a renderer may show.
func (vm *ViewModel) Load(ctx context.Context) error {
	vm.mu.Lock()
	vm.loading = true
	vm.errMsg = ""
	date := vm.date.Format(DateFormat)
	vm.mu.Unlock()

	raw, err := vm.client.ListByDate(ctx, vm.memberID, date)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.loading = false

	if err != nil {
		vm.logger.Error("Failed to load meal records", "date", date, "error", err)
		vm.errMsg = notify.MessageFor(notify.OpMealLoad, err)
		return err
	}

	normalized := NormalizeAll(raw)
	vm.records = normalized
	vm.totals = nutrition.SumDay(normalized)
	return nil
}

// ChangeDate shifts the selected date by the given number of days and
// fires the date-change hook exactly once. It performs no fetch.
func (vm *ViewModel) ChangeDate(days int) time.Time {
	vm.mu.Lock()
	vm.date = vm.date.AddDate(0, 0, days)
	date := vm.date
	hook := vm.onDateChange
	vm.mu.Unlock()

	if hook != nil {
		hook(date)
	}
	return date
}

// SelectedDate returns the currently selected calendar date.
func (vm *ViewModel) SelectedDate() time.Time {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.date
}

// Records returns the normalized records of the last successful load.
func (vm *ViewModel) Records() []models.MealRecord {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	records := make([]models.MealRecord, len(vm.records))
	copy(records, vm.records)
	return records
}

// Totals returns the day totals of the last successful load.
func (vm *ViewModel) Totals() models.DayTotals {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.totals
}

// Loading reports whether a load is in flight.
func (vm *ViewModel) Loading() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loading
}

// Err returns the user-facing error message of the last load, or "".
func (vm *ViewModel) Err() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.errMsg
}

// MealsByType filters the loaded records by display label. It reads the
// already-loaded state only and never touches the network.
func (vm *ViewModel) MealsByType(label string) []models.MealRecord {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	var matched []models.MealRecord
	for _, record := range vm.records {
		if record.Type == label {
			matched = append(matched, record)
		}
	}
	return matched
}
