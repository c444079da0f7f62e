package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateWorkload_Body(t *testing.T) {
	_, r := setupMockRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/simulate_workload", map[string]float64{"delay_seconds": 0})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Workload simulated for 0 seconds."}`, w.Body.String())
}

func TestSimulateWorkload_EmptyBodyUsesDefault(t *testing.T) {
	_, r := setupMockRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/simulate_workload", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Workload simulated for 0.01 seconds."}`, w.Body.String())
}

func TestSimulateWorkload_Negative(t *testing.T) {
	_, r := setupMockRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/simulate_workload", map[string]float64{"delay_seconds": -1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "delay_seconds")
}

func TestSimulateWorkload_TooLong(t *testing.T) {
	_, r := setupMockRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/simulate_workload", map[string]float64{"delay_seconds": 60})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateWorkload_MalformedBody(t *testing.T) {
	_, r := setupMockRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/simulate_workload", bytes.NewBufferString(`{"delay_seconds":"soon"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateWorkloadQuery(t *testing.T) {
	_, r := setupMockRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/simulate_workload?seconds=0", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Workload simulated for 0 seconds."}`, w.Body.String())
}

func TestSimulateWorkloadQuery_Invalid(t *testing.T) {
	_, r := setupMockRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/simulate_workload?seconds=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/simulate_workload?seconds=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
