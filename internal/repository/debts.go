package repository

import (
	"database/sql"
	"fmt"

	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/Maximiliano-zm/deudas-service/internal/models"
	"github.com/google/uuid"
)

const debtColumns = `
	id, user_id, bank_name, current_balance, original_amount, image_url,
	statement_balance, minimum_payment, next_due_date, interest_rate,
	revision, created_at, updated_at`

// scanDebt maps one row onto a Debt, folding the four nullable billing-cycle
// columns into the Statement variant: all present means an open cycle, all
// absent means none.
func scanDebt(row interface{ Scan(...any) error }) (*models.Debt, error) {
	var (
		d         models.Debt
		original  sql.NullInt64
		imageURL  sql.NullString
		stBalance sql.NullInt64
		stMinimum sql.NullInt64
		stDueDate sql.NullTime
		stRate    sql.NullFloat64
	)
	err := row.Scan(&d.ID, &d.UserID, &d.BankName, &d.CurrentBalance, &original, &imageURL,
		&stBalance, &stMinimum, &stDueDate, &stRate,
		&d.Revision, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if original.Valid {
		d.OriginalAmount = &original.Int64
	}
	if imageURL.Valid {
		d.ImageURL = &imageURL.String
	}
	if stBalance.Valid && stMinimum.Valid && stDueDate.Valid {
		st := &ledger.Statement{
			Balance:        stBalance.Int64,
			MinimumPayment: stMinimum.Int64,
			DueDate:        stDueDate.Time,
		}
		if stRate.Valid {
			st.InterestRate = &stRate.Float64
		}
		d.Statement = st
	}
	return &d, nil
}

// statementColumns explodes the Statement variant back into its columns.
func statementColumns(d *models.Debt) (balance, minimum sql.NullInt64, due sql.NullTime, rate sql.NullFloat64) {
	if d.Statement == nil {
		return
	}
	balance = sql.NullInt64{Int64: d.Statement.Balance, Valid: true}
	minimum = sql.NullInt64{Int64: d.Statement.MinimumPayment, Valid: true}
	due = sql.NullTime{Time: d.Statement.DueDate, Valid: true}
	if d.Statement.InterestRate != nil {
		rate = sql.NullFloat64{Float64: *d.Statement.InterestRate, Valid: true}
	}
	return
}

// InsertDebt creates a new debt for its owner.
func (r *Repository) InsertDebt(d *models.Debt) error {
	query := `
		INSERT INTO deudas.debts (id, user_id, bank_name, current_balance, original_amount, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING revision, created_at, updated_at`
	var original sql.NullInt64
	if d.OriginalAmount != nil {
		original = sql.NullInt64{Int64: *d.OriginalAmount, Valid: true}
	}
	var imageURL sql.NullString
	if d.ImageURL != nil {
		imageURL = sql.NullString{String: *d.ImageURL, Valid: true}
	}
	err := r.db.QueryRow(query, d.ID, d.UserID, d.BankName, d.CurrentBalance, original, imageURL).
		Scan(&d.Revision, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}
	return nil
}

// InsertDebts creates a batch of debts in one transaction. Used by the CSV
// import commit: the batch either lands whole or not at all.
func (r *Repository) InsertDebts(debts []*models.Debt) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	query := `
		INSERT INTO deudas.debts (id, user_id, bank_name, current_balance, original_amount)
		VALUES ($1, $2, $3, $4, $5)`
	for _, d := range debts {
		var original sql.NullInt64
		if d.OriginalAmount != nil {
			original = sql.NullInt64{Int64: *d.OriginalAmount, Valid: true}
		}
		if _, err := tx.Exec(query, d.ID, d.UserID, d.BankName, d.CurrentBalance, original); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert imported debt: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// ListDebts returns all of a user's debts ordered by balance, largest first.
func (r *Repository) ListDebts(userID int64) ([]models.Debt, error) {
	query := `SELECT` + debtColumns + `
		FROM deudas.debts
		WHERE user_id = $1
		ORDER BY current_balance DESC, created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

// GetDebt retrieves one debt scoped to its owner.
func (r *Repository) GetDebt(id uuid.UUID, userID int64) (*models.Debt, error) {
	query := `SELECT` + debtColumns + `
		FROM deudas.debts
		WHERE id = $1 AND user_id = $2`
	d, err := scanDebt(r.db.QueryRow(query, id, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return d, nil
}

// UpdateDebt writes a debt's mutable fields back, guarded by the revision
// read earlier. Losing the revision race yields ErrConflict and the caller
// retries from a fresh read.
func (r *Repository) UpdateDebt(d *models.Debt) error {
	query := `
		UPDATE deudas.debts
		SET current_balance = $1, original_amount = $2, image_url = $3,
		    statement_balance = $4, minimum_payment = $5, next_due_date = $6, interest_rate = $7,
		    revision = revision + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8 AND user_id = $9 AND revision = $10
		RETURNING revision, updated_at`
	var original sql.NullInt64
	if d.OriginalAmount != nil {
		original = sql.NullInt64{Int64: *d.OriginalAmount, Valid: true}
	}
	var imageURL sql.NullString
	if d.ImageURL != nil {
		imageURL = sql.NullString{String: *d.ImageURL, Valid: true}
	}
	stBalance, stMinimum, stDue, stRate := statementColumns(d)
	err := r.db.QueryRow(query, d.CurrentBalance, original, imageURL,
		stBalance, stMinimum, stDue, stRate,
		d.ID, d.UserID, d.Revision).
		Scan(&d.Revision, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	return nil
}

// DueStatementReminder is one open statement joined with its owner, fed to
// the reminder notifier.
type DueStatementReminder struct {
	Email            string
	Username         string
	BankName         string
	StatementBalance int64
	MinimumPayment   int64
	DueDate          sql.NullTime
}

// ListOpenStatements returns every open statement across all users together
// with the owner's contact details.
func (r *Repository) ListOpenStatements() ([]DueStatementReminder, error) {
	query := `
		SELECT u.email, u.username, d.bank_name, d.statement_balance, d.minimum_payment, d.next_due_date
		FROM deudas.debts d
		JOIN deudas.users u ON u.id = d.user_id
		WHERE d.statement_balance IS NOT NULL AND d.statement_balance > 0`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open statements: %w", err)
	}
	defer rows.Close()

	var out []DueStatementReminder
	for rows.Next() {
		var rem DueStatementReminder
		if err := rows.Scan(&rem.Email, &rem.Username, &rem.BankName,
			&rem.StatementBalance, &rem.MinimumPayment, &rem.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan open statement: %w", err)
		}
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list open statements: %w", err)
	}
	return out, nil
}
