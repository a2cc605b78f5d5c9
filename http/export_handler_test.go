package http

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetbridge/service"
)

func TestExportScheduleHandler_OK(t *testing.T) {

	handler := NewExportHandler(service.NewAmortizationService())

	body := []byte(`{
		"principal": 12000,
		"annual_rate_percent": 0,
		"compounding": "Monthly",
		"duration_years": 1
	}`)

	w := postJSON(t, handler.ExportSchedule, "/loan/schedule.csv", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("parsing csv: %v", err)
	}

	// Header plus one row per month.
	if len(records) != 13 {
		t.Fatalf("expected 13 records, got %d", len(records))
	}
	wantHeader := "period,payment,principal,interest,balance,cumulative_interest,cumulative_principal"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}
	firstRow := records[1]
	if firstRow[0] != "1" {
		t.Errorf("first row period = %q, want 1", firstRow[0])
	}
	if firstRow[2] != "1000" {
		t.Errorf("first row principal = %q, want 1000", firstRow[2])
	}
}

func TestExportScheduleHandler_InflationColumn(t *testing.T) {

	handler := NewExportHandler(service.NewAmortizationService())

	body := []byte(`{
		"principal": 12000,
		"annual_rate_percent": 5,
		"compounding": "Monthly",
		"duration_years": 1,
		"adjust_inflation": true,
		"inflation_rate_percent": 2
	}`)

	w := postJSON(t, handler.ExportSchedule, "/loan/schedule.csv", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("parsing csv: %v", err)
	}
	header := records[0]
	if header[len(header)-1] != "inflation_adjusted_balance" {
		t.Errorf("expected inflation_adjusted_balance as the last column, got %q", header[len(header)-1])
	}
}

func TestExportScheduleHandler_InvalidTerms(t *testing.T) {

	handler := NewExportHandler(service.NewAmortizationService())

	body := []byte(`{
		"principal": 1000,
		"deposit": 5000,
		"annual_rate_percent": 5,
		"compounding": "Monthly",
		"duration_years": 10
	}`)

	w := postJSON(t, handler.ExportSchedule, "/loan/schedule.csv", body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportScheduleHandler_MethodNotAllowed(t *testing.T) {

	handler := NewExportHandler(service.NewAmortizationService())

	req := httptest.NewRequest(http.MethodGet, "/loan/schedule.csv", nil)
	w := httptest.NewRecorder()
	handler.ExportSchedule(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
