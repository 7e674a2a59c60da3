package service

import (
	"context"

	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/Maximiliano-zm/deudas-service/internal/models"
	"github.com/google/uuid"
)

// ImportReport summarizes a CSV import: how many rows landed and which were
// rejected, each reject keeping its full error list for display.
type ImportReport struct {
	Imported int                `json:"imported"`
	Rejected []ledger.ImportRow `json:"rejected,omitempty"`
}

// PreviewImport parses a CSV upload without persisting anything, so the
// caller can show the valid/invalid partition before committing.
func (s *Service) PreviewImport(text string) []ledger.ImportRow {
	return ledger.ParseImportCSV(text)
}

// ImportCSV parses a CSV upload and inserts every valid row as a new debt.
// Invalid rows never block the batch; they come back in the report.
func (s *Service) ImportCSV(ctx context.Context, text string) (*ImportReport, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	rows := ledger.ParseImportCSV(text)
	valid, invalid := ledger.PartitionRows(rows)

	if len(valid) > 0 {
		debts := make([]*models.Debt, 0, len(valid))
		for _, row := range valid {
			d := &models.Debt{
				ID:             uuid.New(),
				UserID:         userID,
				BankName:       row.Banco,
				OriginalAmount: row.MontoOriginal,
			}
			d.CurrentBalance = row.SaldoActual
			debts = append(debts, d)
		}
		if err := s.repo.InsertDebts(debts); err != nil {
			return nil, err
		}
	}

	s.log.Infof("CSV import for user %d: %d imported, %d rejected", userID, len(valid), len(invalid))
	return &ImportReport{Imported: len(valid), Rejected: invalid}, nil
}
