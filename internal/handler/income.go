package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Maximiliano-zm/deudas-service/internal/service"
)

// GetIncome returns the user's configured monthly income, if any.
func (h *Handler) GetIncome(w http.ResponseWriter, r *http.Request) {
	income, err := h.svc.GetIncome(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"income": income})
}

// SaveIncome upserts the user's monthly income.
func (h *Handler) SaveIncome(w http.ResponseWriter, r *http.Request) {
	var req service.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	income, err := h.svc.SaveIncome(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, income)
}

// Summary returns the portfolio aggregates.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}
