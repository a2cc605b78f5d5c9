package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"budgetbridge/domain"
	"budgetbridge/repository"
	"budgetbridge/service"
)

type ScheduleHandler struct {
	service *service.AmortizationService
	cache   repository.CacheRepository
}

func NewScheduleHandler(
	service *service.AmortizationService,
	cache repository.CacheRepository,
) *ScheduleHandler {
	return &ScheduleHandler{service: service, cache: cache}
}

// cacheKey derives a stable digest from the request terms. Identical
// terms always hit the same cache entry.
func cacheKey(terms domain.LoanTerms) string {
	raw, err := json.Marshal(terms)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("schedule:%x", sha256.Sum256(raw))
}

func (h *ScheduleHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
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

	key := cacheKey(terms)
	if key != "" {
		if cached, ok := h.cache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, cached)
			return
		}
	}

	result, err := h.service.Calculate(terms)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Encode into a buffer first so a failure never writes a partial
	// body after the headers.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("encoding schedule response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if key != "" {
		if err := h.cache.Set(r.Context(), key, buf.String()); err != nil {
			slog.Warn("caching schedule result", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("writing schedule response", "error", err)
	}
}
