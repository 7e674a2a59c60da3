package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/Maximiliano-zm/deudas-service/internal/models"
	"github.com/Maximiliano-zm/deudas-service/internal/repository"
)

// GetIncome returns the user's income record, or nil when never configured.
func (s *Service) GetIncome(ctx context.Context) (*models.Income, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	income, err := s.repo.GetIncome(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return income, nil
}

// IncomeRequest carries the raw income form values.
type IncomeRequest struct {
	MonthlyAmount string `json:"monthly_amount"`
	Note          string `json:"note,omitempty"`
}

// SaveIncome upserts the user's monthly income.
func (s *Service) SaveIncome(ctx context.Context, req IncomeRequest) (*models.Income, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	amount, ok := ledger.ParseAmount(req.MonthlyAmount)
	if req.MonthlyAmount == "" || !ok || amount <= 0 {
		return nil, ledger.FieldErrors{"monthly_amount": "Ingresa un monto válido mayor a $0."}
	}

	var note *string
	if trimmed := strings.TrimSpace(req.Note); trimmed != "" {
		note = &trimmed
	}

	income, err := s.repo.UpsertIncome(userID, amount, note)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Income saved for user %d: %s", userID, ledger.FormatAmount(amount))
	return income, nil
}

// Summary computes the portfolio aggregates for the dashboard banner and
// the metrics charts. Everything is derived fresh on every read.
func (s *Service) Summary(ctx context.Context) (*ledger.Summary, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	debts, err := s.repo.ListDebts(userID)
	if err != nil {
		return nil, err
	}

	var monthlyIncome int64
	income, err := s.repo.GetIncome(userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if income != nil {
		monthlyIncome = income.MonthlyAmount
	}

	balances := make([]ledger.BankBalance, 0, len(debts))
	for _, d := range debts {
		balances = append(balances, ledger.BankBalance{BankName: d.BankName, Balance: d.CurrentBalance})
	}

	summary := ledger.Summarize(balances, monthlyIncome)
	return &summary, nil
}
