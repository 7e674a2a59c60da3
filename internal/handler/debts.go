package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/Maximiliano-zm/deudas-service/internal/service"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func debtID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

// ListDebts returns the user's debts with their derived dashboard values.
func (h *Handler) ListDebts(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListDebts(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"debts": views})
}

// CreateDebt handles manual debt entry.
func (h *Handler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	var req service.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	debt, err := h.svc.CreateDebt(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, debt)
}

// RegisterStatement opens or overwrites a debt's monthly statement.
func (h *Handler) RegisterStatement(w http.ResponseWriter, r *http.Request) {
	id, ok := debtID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid debt id")
		return
	}

	var in ledger.StatementInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	debt, err := h.svc.RegisterStatement(r.Context(), id, in)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, debt)
}

// Pay applies a payment against a debt's open statement.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := debtID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid debt id")
		return
	}

	var req service.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Strategy == "" {
		req.Strategy = ledger.PayFull
	}

	debt, err := h.svc.Pay(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, debt)
}

// ExportDebtBook serves the debt book as a downloadable XML document.
func (h *Handler) ExportDebtBook(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ExportDebtBook(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="deudas.xml"`)
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}
