package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/ingest/sensor"
	"github.com/meltforce/ftracker/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func newTestServer() *Server {
	log := slog.Default()
	return New(sensor.NewProvider(log), testAPIKey, log)
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestHandleCompute verifies a single package is computed and rendered.
func TestHandleCompute(t *testing.T) {
	rec := post(t, newTestServer(), "/api/v1/trainings/", `{"code":"RUN","data":[15000,1,75]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report ingest.Report
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, "RUN", report.Code)
	assert.Equal(t, "Running", report.Info.TrainingType)
	assert.InDelta(t, 699.75, report.Info.Calories, 1e-9)
	assert.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; "+
		"Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.", report.Message)
}

func TestHandleComputeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{"code":`, http.StatusBadRequest},
		{"unknown code", `{"code":"XXX","data":[1]}`, http.StatusBadRequest},
		{"argument count", `{"code":"RUN","data":[1,2]}`, http.StatusBadRequest},
		{"fractional count", `{"code":"RUN","data":[1.5,1,75]}`, http.StatusBadRequest},
		{"zero duration", `{"code":"RUN","data":[15000,0,75]}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, newTestServer(), "/api/v1/trainings/", tt.body)
			assert.Equal(t, tt.want, rec.Code)

			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

// TestHandleComputeBatch verifies reports come back in input order.
func TestHandleComputeBatch(t *testing.T) {
	body := `[
		{"code":"SWM","data":[720,1,80,25,40]},
		{"code":"RUN","data":[15000,1,75]},
		{"code":"WLK","data":[9000,1,75,180]}
	]`
	rec := post(t, newTestServer(), "/api/v1/trainings/batch", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result ingest.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.Len(t, result.Reports, 3)
	assert.Equal(t, "Swimming", result.Reports[0].Info.TrainingType)
	assert.Equal(t, "Running", result.Reports[1].Info.TrainingType)
	assert.Equal(t, "SportsWalking", result.Reports[2].Info.TrainingType)
}

// TestHandleComputeBatchFailure verifies the failing index is reported along
// with the reports computed before it.
func TestHandleComputeBatchFailure(t *testing.T) {
	body := `[{"code":"RUN","data":[15000,1,75]},{"code":"RUN","data":[1,2]}]`
	rec := post(t, newTestServer(), "/api/v1/trainings/batch", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string        `json:"error"`
		Index  int           `json:"index"`
		Result ingest.Result `json:"result"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Index)
	assert.Contains(t, resp.Error, "RUN")
	assert.Len(t, resp.Result.Reports, 1)
}

func TestHandleWorkoutTypes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workout-types", nil)
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var kinds []training.Kind
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&kinds))
	require.Len(t, kinds, 3)
	assert.Equal(t, "SWM", kinds[0].Code)
	assert.Equal(t, "Swimming", kinds[0].Name)
}

// TestComputeRequiresAPIKey verifies the compute endpoints are protected.
func TestComputeRequiresAPIKey(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trainings/", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/trainings/", strings.NewReader(`{}`))
	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&training.UnknownWorkoutTypeError{Code: "X"}, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", &training.ArgumentCountError{Code: "RUN", Expected: 3, Actual: 2}), http.StatusBadRequest},
		{training.ErrInvalidValue, http.StatusBadRequest},
		{fmt.Errorf("Running mean speed: %w", training.ErrDivisionByZero), http.StatusUnprocessableEntity},
		{training.ErrNotImplemented, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
