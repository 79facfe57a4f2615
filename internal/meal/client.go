// internal/meal/client.go
package meal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"diet-client/internal/api"
	"diet-client/internal/models"
	"diet-client/pkg/logger"
)

const listByDatePathFmt = "/api/meals/modified-date/member/%d"

// DateFormat is the calendar-day wire format for meal queries.
const DateFormat = "2006-01-02"

// Client fetches raw meal records from the backend.
type Client struct {
	api    *api.Client
	logger *logger.Logger
}

func NewClient(apiClient *api.Client, l *logger.Logger) *Client {
	return &Client{api: apiClient, logger: l}
}

// ListByDate returns the member's raw meal records for one calendar
// date. The backend answers either with a bare array or with a
// {"data": [...]} envelope; both are accepted.
func (c *Client) ListByDate(ctx context.Context, memberID int64, date string) ([]models.MealRecord, error) {
	if memberID <= 0 {
		return nil, fmt.Errorf("member id must be positive, got %d", memberID)
	}
	if _, err := time.Parse(DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	query := url.Values{}
	query.Set("date", date)

	var raw json.RawMessage
	path := fmt.Sprintf(listByDatePathFmt, memberID)
	if err := c.api.GetJSON(ctx, "meal-list", path, query, &raw); err != nil {
		return nil, err
	}

	records, err := decodeRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode meal list: %w", err)
	}

	c.logger.Debug("Loaded meal records", "member_id", memberID, "date", date, "count", len(records))
	return records, nil
}

func decodeRecords(raw json.RawMessage) ([]models.MealRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var records []models.MealRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var envelope struct {
		Data []models.MealRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
