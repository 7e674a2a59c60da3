package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Maximiliano-zm/deudas-service/internal/service"
)

func newImportHandler() *Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHandler(service.NewService(nil, nil, log, nil), log)
}

func TestPreviewImportRejectsOversizedBody(t *testing.T) {
	body := "banco,saldo_actual,monto_original\n" +
		strings.Repeat("Santander,800000,1200000\n", maxImportSize/20)
	if len(body) <= maxImportSize {
		t.Fatalf("fixture too small: %d bytes", len(body))
	}

	h := newImportHandler()
	rec := httptest.NewRecorder()
	h.PreviewImport(rec, httptest.NewRequest(http.MethodPost, "/import/preview", strings.NewReader(body)))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
	if !strings.Contains(rec.Body.String(), "tamaño máximo") {
		t.Errorf("body = %q, want size limit message", rec.Body.String())
	}
}

func TestPreviewImportAcceptsBodyAtLimit(t *testing.T) {
	row := "Santander,800000,1200000\n"
	body := "banco,saldo_actual,monto_original\n" + strings.Repeat(row, 2000)
	if len(body) > maxImportSize {
		t.Fatalf("fixture exceeds limit: %d bytes", len(body))
	}

	h := newImportHandler()
	rec := httptest.NewRecorder()
	h.PreviewImport(rec, httptest.NewRequest(http.MethodPost, "/import/preview", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"valid":2000`) {
		t.Errorf("body = %q, want 2000 valid rows", rec.Body.String())
	}
}

func TestPreviewImportRejectsEmptyBody(t *testing.T) {
	h := newImportHandler()
	rec := httptest.NewRecorder()
	h.PreviewImport(rec, httptest.NewRequest(http.MethodPost, "/import/preview", strings.NewReader("")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
