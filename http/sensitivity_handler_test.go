package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"budgetbridge/domain"
	"budgetbridge/service"
)

func newSensitivityHandler() *SensitivityHandler {
	return NewSensitivityHandler(
		service.NewSensitivityService(service.NewAmortizationService()),
	)
}

func TestCompareRatesHandler_OK(t *testing.T) {

	handler := newSensitivityHandler()

	body := []byte(`{
		"principal": 250000,
		"deposit": 25000,
		"annual_rate_percent": 7.5,
		"compounding": "Monthly",
		"duration_years": 20
	}`)

	w := postJSON(t, handler.CompareRates, "/loan/sensitivity", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.SensitivityResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(result.Quotes) != 3 {
		t.Errorf("expected 3 quotes, got %d", len(result.Quotes))
	}
}

func TestCompareRatesHandler_MethodNotAllowed(t *testing.T) {

	handler := newSensitivityHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/sensitivity", nil)
	w := httptest.NewRecorder()

	handler.CompareRates(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCompareRatesHandler_BadRequest(t *testing.T) {

	handler := newSensitivityHandler()

	w := postJSON(t, handler.CompareRates, "/loan/sensitivity", []byte(`{invalid-json}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
