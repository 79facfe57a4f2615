package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet-client/internal/models"
)

const mealDayBody = `[
	{"mealId": 1, "mealType": "BREAKFAST",
	 "foods": [{"calories": 200, "carbohydrate": 30, "protein": 5, "fat": 2}],
	 "modifiedAt": "2024-05-01T09:00:00"},
	{"mealId": 2, "mealType": "SNACK",
	 "foods": [{"calories": 100, "carbohydrate": 10, "protein": 1, "fat": 1}],
	 "createDate": "2024-05-01T15:00:00"}
]`

func TestRunMeals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/meals/modified-date/member/1", r.URL.Path)
		require.Equal(t, "2024-05-01", r.URL.Query().Get("date"))
		io.WriteString(w, mealDayBody)
	}))
	defer srv.Close()
	t.Setenv("API_BASE_URL", srv.URL)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	err := run([]string{"-op", "meals", "-member", "1", "-date", "2024-05-01"}, new(bytes.Buffer), stdout, stderr)
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "2024-05-01 식사기록 (2건)")
	assert.Contains(t, output, "[아침] 200kcal")
	assert.Contains(t, output, "[간식] 100kcal")
	assert.Contains(t, output, "총 섭취량: 300kcal  탄 40g  단 6g  지 3g")
}

func TestRunMealsWithShiftReloadsOnce(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		require.Equal(t, "2024-04-30", r.URL.Query().Get("date"))
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()
	t.Setenv("API_BASE_URL", srv.URL)

	stdout := new(bytes.Buffer)
	err := run([]string{"-op", "meals", "-member", "1", "-date", "2024-05-01", "-shift", "-1"},
		new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "a date change must trigger exactly one reload")
	assert.Contains(t, stdout.String(), "2024-04-30 식사기록 (0건)")
}

func TestRunLoginWithPipedPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/members/login", r.URL.Path)

		var creds struct {
			Nickname string `json:"nickname"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "haru", creds.Nickname)
		assert.Equal(t, "piped_secret", creds.Password)

		json.NewEncoder(w).Encode(models.Member{ID: 1, Nickname: "haru", Email: "haru@example.com"})
	}))
	defer srv.Close()
	t.Setenv("API_BASE_URL", srv.URL)

	stdin := bytes.NewBufferString("piped_secret\n")
	stdout := new(bytes.Buffer)
	err := run([]string{"-op", "login", "-nickname", "haru"}, stdin, stdout, new(bytes.Buffer))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Password: ")
	assert.Contains(t, stdout.String(), "Logged in as haru (haru@example.com)")
}

func TestRunLoginBadCredentialsNotifies(t *testing.T) {
	t.Setenv("RETRY_BASE_DELAY", "1ms")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	t.Setenv("API_BASE_URL", srv.URL)

	stderr := new(bytes.Buffer)
	err := run([]string{"-op", "login", "-nickname", "haru", "-password", "wrong"},
		new(bytes.Buffer), new(bytes.Buffer), stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "로그인 정보가 올바르지 않습니다")
}

func TestRunLogout(t *testing.T) {
	// Logout succeeds even with no backend listening.
	t.Setenv("API_BASE_URL", "http://127.0.0.1:1")

	stdout := new(bytes.Buffer)
	err := run([]string{"-op", "logout"}, new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Logged out")
}

func TestRunUnknownOperation(t *testing.T) {
	err := run([]string{"-op", "fly"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestRunLoginRequiresNickname(t *testing.T) {
	err := run([]string{"-op", "login"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags: nickname")
}
