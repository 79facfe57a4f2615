package meal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet-client/internal/api"
	"diet-client/pkg/logger"
)

const twoRecordBody = `[
	{"mealId": 1, "mealType": "BREAKFAST",
	 "foods": [{"calories": 200, "carbohydrate": 30, "protein": 5, "fat": 2}],
	 "modifiedAt": "2024-05-01T09:00:00"},
	{"mealId": 2, "mealType": "SNACK",
	 "foods": [{"calories": 100, "carbohydrate": 10, "protein": 1, "fat": 1}],
	 "createDate": "2024-05-01T15:00:00"}
]`

func newTestMealClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	apiClient, err := api.NewClient(baseURL, 2*time.Second, logger.NewNop())
	require.NoError(t, err)
	return NewClient(apiClient, logger.NewNop())
}

func TestListByDateAcceptsBareArrayAndEnvelope(t *testing.T) {
	bodies := map[string]string{
		"bare array": twoRecordBody,
		"envelope":   `{"data": ` + twoRecordBody + `}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/meals/modified-date/member/1", r.URL.Path)
				assert.Equal(t, "2024-05-01", r.URL.Query().Get("date"))
				io.WriteString(w, body)
			}))
			defer srv.Close()

			client := newTestMealClient(t, srv.URL)
			records, err := client.ListByDate(context.Background(), 1, "2024-05-01")
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "BREAKFAST", records[0].MealType)
			assert.Equal(t, "SNACK", records[1].MealType)
		})
	}
}

func TestListByDateValidatesInput(t *testing.T) {
	client := newTestMealClient(t, "http://localhost:0")

	_, err := client.ListByDate(context.Background(), 0, "2024-05-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member id")

	_, err = client.ListByDate(context.Background(), 1, "05/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")

	_, err = client.ListByDate(context.Background(), 1, "2024-05-01T10:00:00")
	require.Error(t, err, "date must be a calendar day without a time component")
}

func TestListByDateEmptyDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	client := newTestMealClient(t, srv.URL)
	records, err := client.ListByDate(context.Background(), 1, "2024-05-01")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListByDatePropagatesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestMealClient(t, srv.URL)
	_, err := client.ListByDate(context.Background(), 1, "2024-05-01")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, api.StatusOf(err))
}
