package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"budgetbridge/domain"
	"budgetbridge/service"
)

type SensitivityHandler struct {
	service *service.SensitivityService
}

func NewSensitivityHandler(service *service.SensitivityService) *SensitivityHandler {
	return &SensitivityHandler{service: service}
}

func (h *SensitivityHandler) CompareRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.SensitivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareRates(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("encoding sensitivity response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("writing sensitivity response", "error", err)
	}
}
