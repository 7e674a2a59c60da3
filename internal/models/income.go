package models

import (
	"time"

	"github.com/google/uuid"
)

// Income is a user's declared monthly income. At most one record is
// authoritative per user; the latest by creation time wins.
type Income struct {
	ID            uuid.UUID `json:"id"`
	UserID        int64     `json:"user_id"`
	MonthlyAmount int64     `json:"monthly_amount"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
