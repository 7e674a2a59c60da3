package handler

import (
	"io"
	"net/http"

	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
)

// CSV uploads up to a few thousand rows stay well under this.
const maxImportSize = 1 << 20

func (h *Handler) readCSVBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	// Read one byte past the limit so an oversized upload is rejected
	// outright instead of importing a truncated last row.
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize+1))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to read request body")
		return "", false
	}
	if len(body) > maxImportSize {
		h.respondError(w, http.StatusRequestEntityTooLarge, "El archivo supera el tamaño máximo permitido.")
		return "", false
	}
	if len(body) == 0 {
		h.respondError(w, http.StatusBadRequest, "El archivo no contiene filas de datos.")
		return "", false
	}
	return string(body), true
}

// PreviewImport parses a CSV body and returns the valid/invalid partition
// without persisting anything.
func (h *Handler) PreviewImport(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readCSVBody(w, r)
	if !ok {
		return
	}

	rows := h.svc.PreviewImport(text)
	valid, invalid := ledger.PartitionRows(rows)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"rows":    rows,
		"valid":   len(valid),
		"invalid": len(invalid),
	})
}

// Import parses a CSV body and inserts every valid row.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readCSVBody(w, r)
	if !ok {
		return
	}

	report, err := h.svc.ImportCSV(r.Context(), text)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, report)
}

// ImportTemplate serves the downloadable CSV template.
func (h *Handler) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="plantilla_deudas.csv"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, ledger.CSVTemplate)
}
