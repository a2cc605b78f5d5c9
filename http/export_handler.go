package http

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"budgetbridge/domain"
	"budgetbridge/service"
)

// ExportHandler serializes a schedule as CSV, one row per period. The
// column order is fixed; values keep full precision unless rounding
// was requested in the terms.
type ExportHandler struct {
	service *service.AmortizationService
}

func NewExportHandler(service *service.AmortizationService) *ExportHandler {
	return &ExportHandler{service: service}
}

func (h *ExportHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var terms domain.LoanTerms
	if err := json.NewDecoder(r.Body).Decode(&terms); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(terms)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	withInflation := len(result.Schedule) > 0 && result.Schedule[0].InflationAdjustedBalance != nil

	header := []string{
		"period", "payment", "principal", "interest", "balance",
		"cumulative_interest", "cumulative_principal",
	}
	if withInflation {
		header = append(header, "inflation_adjusted_balance")
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="amortization_schedule.csv"`)

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		slog.Warn("writing csv header", "error", err)
		return
	}

	for _, entry := range result.Schedule {
		row := []string{
			strconv.Itoa(entry.Period),
			formatAmount(entry.Payment),
			formatAmount(entry.Principal),
			formatAmount(entry.Interest),
			formatAmount(entry.Balance),
			formatAmount(entry.CumulativeInterest),
			formatAmount(entry.CumulativePrincipal),
		}
		if withInflation {
			row = append(row, formatAmount(*entry.InflationAdjustedBalance))
		}
		if err := writer.Write(row); err != nil {
			slog.Warn("writing csv row", "period", entry.Period, "error", err)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		slog.Warn("flushing csv export", "error", err)
	}
}

// formatAmount prints the shortest representation that round-trips,
// so exports lose no precision.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
