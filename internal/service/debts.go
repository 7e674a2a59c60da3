package service

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/Maximiliano-zm/deudas-service/internal/export"
	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/Maximiliano-zm/deudas-service/internal/models"
	"github.com/google/uuid"
)

// CreateDebtRequest is the manual-entry form: raw amount strings plus an
// optional base64-encoded receipt image.
type CreateDebtRequest struct {
	ledger.DebtInput
	ImageBase64 string `json:"image_base64,omitempty"`
	ImageExt    string `json:"image_ext,omitempty"`
}

// CreateDebt registers a new debt for the authenticated user. The receipt
// image is best-effort: an upload failure logs and the debt lands without it.
func (s *Service) CreateDebt(ctx context.Context, req CreateDebtRequest) (*models.Debt, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	bank, balance, original, errs := ledger.ValidateDebt(req.DebtInput)
	if errs != nil {
		return nil, errs
	}

	var imageURL *string
	if req.ImageBase64 != "" {
		data, decErr := base64.StdEncoding.DecodeString(req.ImageBase64)
		if decErr != nil {
			s.log.Warnf("Skipping receipt image for user %d: %v", userID, decErr)
		} else if url, saveErr := s.images.Save(userID, req.ImageExt, data); saveErr != nil {
			s.log.Warnf("Skipping receipt image for user %d: %v", userID, saveErr)
		} else {
			imageURL = &url
		}
	}

	debt := &models.Debt{
		ID:             uuid.New(),
		UserID:         userID,
		BankName:       bank,
		OriginalAmount: original,
		ImageURL:       imageURL,
	}
	debt.CurrentBalance = balance

	if err := s.repo.InsertDebt(debt); err != nil {
		return nil, err
	}

	s.log.Infof("Debt created for user %d: %s (%s)", userID, debt.BankName, ledger.FormatAmount(balance))
	return debt, nil
}

// ListDebts returns the user's debts decorated with the derived dashboard
// values, largest balance first.
func (s *Service) ListDebts(ctx context.Context) ([]models.DebtView, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	debts, err := s.repo.ListDebts(userID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	views := make([]models.DebtView, 0, len(debts))
	for _, d := range debts {
		view := models.DebtView{
			Debt:     d,
			Progress: ledger.DebtProgress(d.CurrentBalance, d.OriginalAmount),
		}
		if d.Statement != nil {
			due := ledger.ClassifyDueDate(d.Statement.DueDate, today)
			view.Due = &due
		}
		views = append(views, view)
	}
	return views, nil
}

// RegisterStatement opens or overwrites the monthly statement on a debt.
func (s *Service) RegisterStatement(ctx context.Context, debtID uuid.UUID, in ledger.StatementInput) (*models.Debt, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	debt, err := s.repo.GetDebt(debtID, userID)
	if err != nil {
		return nil, err
	}

	if errs := debt.RegisterStatement(in); errs != nil {
		return nil, errs
	}

	if err := s.repo.UpdateDebt(debt); err != nil {
		return nil, err
	}

	s.log.Infof("Statement registered for debt %s: %s due %s",
		debt.ID, ledger.FormatAmount(debt.Statement.Balance),
		debt.Statement.DueDate.Format("2006-01-02"))
	return debt, nil
}

// PayRequest selects the payment strategy; the amount only matters for
// the custom one.
type PayRequest struct {
	Strategy ledger.PaymentStrategy `json:"strategy"`
	Amount   string                 `json:"amount,omitempty"`
}

// Pay applies a payment to a debt's open statement: the balance drops and
// the billing cycle closes whatever the amount.
func (s *Service) Pay(ctx context.Context, debtID uuid.UUID, req PayRequest) (*models.Debt, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	debt, err := s.repo.GetDebt(debtID, userID)
	if err != nil {
		return nil, err
	}

	amount, err := debt.PaymentAmount(req.Strategy, req.Amount)
	if err != nil {
		return nil, err
	}
	if err := debt.Pay(amount); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDebt(debt); err != nil {
		return nil, err
	}

	s.log.Infof("Payment of %s applied to debt %s, balance now %s",
		ledger.FormatAmount(amount), debt.ID, ledger.FormatAmount(debt.CurrentBalance))
	return debt, nil
}

// ExportDebtBook renders the user's debts as a downloadable XML document.
func (s *Service) ExportDebtBook(ctx context.Context) ([]byte, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	debts, err := s.repo.ListDebts(userID)
	if err != nil {
		return nil, err
	}
	return export.DebtBookXML(user.Username, debts, time.Now())
}
