package models

import (
	"time"

	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/google/uuid"
)

// Debt is one tracked credit account. The embedded ledger.Account carries
// the current balance and the optional open statement, so the billing cycle
// transitions operate directly on the entity.
type Debt struct {
	ID     uuid.UUID `json:"id"`
	UserID int64     `json:"user_id"`
	ledger.Account
	BankName       string    `json:"bank_name"`
	OriginalAmount *int64    `json:"original_amount,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Revision       int64     `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DebtView decorates a debt with the derived values the dashboard shows.
type DebtView struct {
	Debt
	Progress ledger.Progress   `json:"progress"`
	Due      *ledger.DueStatus `json:"due,omitempty"`
}
