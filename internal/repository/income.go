package repository

import (
	"database/sql"
	"fmt"

	"github.com/Maximiliano-zm/deudas-service/internal/models"
	"github.com/google/uuid"
)

// GetIncome returns the user's authoritative income record, the latest by
// creation time, or ErrNotFound when none was ever configured.
func (r *Repository) GetIncome(userID int64) (*models.Income, error) {
	income := &models.Income{}
	var note sql.NullString
	query := `
		SELECT id, user_id, monthly_amount, note, created_at, updated_at
		FROM deudas.income
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`
	err := r.db.QueryRow(query, userID).
		Scan(&income.ID, &income.UserID, &income.MonthlyAmount, &note, &income.CreatedAt, &income.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get income: %w", err)
	}
	if note.Valid {
		income.Note = &note.String
	}
	return income, nil
}

// UpsertIncome creates the income record on first configuration and updates
// it in place afterwards.
func (r *Repository) UpsertIncome(userID int64, monthlyAmount int64, note *string) (*models.Income, error) {
	existing, err := r.GetIncome(userID)
	if err != nil && err != ErrNotFound {
		return nil, err
	}

	var noteVal sql.NullString
	if note != nil {
		noteVal = sql.NullString{String: *note, Valid: true}
	}

	income := &models.Income{UserID: userID, MonthlyAmount: monthlyAmount, Note: note}
	if existing != nil {
		query := `
			UPDATE deudas.income
			SET monthly_amount = $1, note = $2, updated_at = CURRENT_TIMESTAMP
			WHERE id = $3 AND user_id = $4
			RETURNING id, created_at, updated_at`
		err = r.db.QueryRow(query, monthlyAmount, noteVal, existing.ID, userID).
			Scan(&income.ID, &income.CreatedAt, &income.UpdatedAt)
	} else {
		query := `
			INSERT INTO deudas.income (id, user_id, monthly_amount, note)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at`
		err = r.db.QueryRow(query, uuid.New(), userID, monthlyAmount, noteVal).
			Scan(&income.ID, &income.CreatedAt, &income.UpdatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert income: %w", err)
	}
	return income, nil
}
