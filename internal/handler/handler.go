package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/Maximiliano-zm/deudas-service/internal/repository"
	"github.com/Maximiliano-zm/deudas-service/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the error taxonomy onto HTTP statuses: field
// errors come back as a per-field mapping, a missing open statement routes
// the caller to statement registration, precondition violations are plain
// 400s and lost revision races are conflicts.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var fieldErrs ledger.FieldErrors
	if errors.As(err, &fieldErrs) {
		h.respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrs})
		return
	}
	var validationErr ledger.ValidationError
	if errors.As(err, &validationErr) {
		h.respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	switch {
	case errors.Is(err, ledger.ErrNoOpenStatement):
		h.respondJSON(w, http.StatusConflict, map[string]string{
			"error":  err.Error(),
			"action": "register_statement",
		})
	case errors.Is(err, repository.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, repository.ErrConflict):
		h.respondError(w, http.StatusConflict, "La deuda fue modificada por otra operación. Intenta de nuevo.")
	default:
		h.log.Errorf("Request failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Error inesperado. Intenta de nuevo.")
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, err := h.svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Health is the liveness endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
