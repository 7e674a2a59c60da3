package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FieldErrors maps a form field name to its validation message. Validation
// collects every failing field before reporting, never just the first.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// ErrNoOpenStatement signals a payment attempted while no billing cycle is
// open. Callers route the user to statement registration instead.
var ErrNoOpenStatement = errors.New("no hay factura abierta para esta deuda")

// ValidationError is a single precondition violation that blocks a state
// transition entirely, as opposed to per-field form errors.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Statement holds the billed terms of the current cycle. Its fields live and
// die together: a nil *Statement is the only representation of "no cycle".
type Statement struct {
	Balance        int64     `json:"statement_balance"`
	MinimumPayment int64     `json:"minimum_payment"`
	DueDate        time.Time `json:"next_due_date"`
	InterestRate   *float64  `json:"interest_rate,omitempty"`
}

// Account is the slice of a debt the billing cycle state machine governs:
// the accumulated balance plus the optional open statement.
type Account struct {
	CurrentBalance int64      `json:"current_balance"`
	Statement      *Statement `json:"statement,omitempty"`
}

// HasOpenStatement reports whether a billing cycle is currently open.
func (a *Account) HasOpenStatement() bool {
	return a.Statement != nil && a.Statement.Balance > 0
}

// StatementInput carries the raw form values for statement registration.
// Amounts are locale-formatted strings, the due date is "2006-01-02" and
// the interest rate is an optional decimal string.
type StatementInput struct {
	Balance        string `json:"statement_balance"`
	MinimumPayment string `json:"minimum_payment"`
	DueDate        string `json:"next_due_date"`
	InterestRate   string `json:"interest_rate"`
}

// RegisterStatement opens (or overwrites) the billing cycle from raw form
// input. On any validation failure the account is left untouched and every
// invalid field is reported.
func (a *Account) RegisterStatement(in StatementInput) FieldErrors {
	errs := FieldErrors{}

	balance, balOK := ParseAmount(in.Balance)
	if in.Balance == "" || !balOK || balance <= 0 {
		errs["statement_balance"] = "Ingresa el monto facturado mayor a $0."
	}

	minPay, minOK := ParseAmount(in.MinimumPayment)
	if in.MinimumPayment == "" || !minOK || minPay <= 0 {
		errs["minimum_payment"] = "Ingresa el pago mínimo mayor a $0."
	} else if balance > 0 && minPay > balance {
		errs["minimum_payment"] = "El pago mínimo no puede superar el monto facturado."
	}

	var due time.Time
	if in.DueDate == "" {
		errs["next_due_date"] = "Selecciona la fecha de vencimiento."
	} else {
		var err error
		due, err = time.Parse("2006-01-02", in.DueDate)
		if err != nil {
			errs["next_due_date"] = "Selecciona la fecha de vencimiento."
		}
	}

	var rate *float64
	if in.InterestRate != "" {
		r, err := strconv.ParseFloat(in.InterestRate, 64)
		if err != nil || r < 0 || r > 100 {
			errs["interest_rate"] = "La tasa debe ser un número entre 0 y 100."
		} else {
			rate = &r
		}
	}

	if len(errs) > 0 {
		return errs
	}
	a.Statement = &Statement{
		Balance:        balance,
		MinimumPayment: minPay,
		DueDate:        due,
		InterestRate:   rate,
	}
	return nil
}

// PaymentStrategy selects how the payment amount is derived. All three
// strategies route through the same Pay preconditions.
type PaymentStrategy string

const (
	PayFull    PaymentStrategy = "full"
	PayMinimum PaymentStrategy = "minimum"
	PayCustom  PaymentStrategy = "custom"
)

// PaymentAmount resolves the amount a strategy stands for. Custom amounts
// arrive as locale-formatted strings.
func (a *Account) PaymentAmount(strategy PaymentStrategy, customRaw string) (int64, error) {
	if !a.HasOpenStatement() {
		return 0, ErrNoOpenStatement
	}
	switch strategy {
	case PayFull:
		return a.Statement.Balance, nil
	case PayMinimum:
		if a.Statement.MinimumPayment <= 0 {
			return 0, ValidationError("la factura no tiene pago mínimo registrado")
		}
		return a.Statement.MinimumPayment, nil
	case PayCustom:
		amount, ok := ParseAmount(customRaw)
		if !ok || amount <= 0 {
			return 0, ValidationError("Ingresa un monto válido mayor a $0.")
		}
		return amount, nil
	default:
		return 0, ValidationError(fmt.Sprintf("estrategia de pago desconocida: %q", strategy))
	}
}

// Pay applies a payment against the open statement: the balance drops by
// amount (floored at zero) and the cycle closes, whatever the amount paid.
// Precondition failures leave the account untouched.
func (a *Account) Pay(amount int64) error {
	if !a.HasOpenStatement() {
		return ErrNoOpenStatement
	}
	if amount <= 0 {
		return ValidationError("Ingresa un monto válido mayor a $0.")
	}
	if amount > a.CurrentBalance {
		return ValidationError(fmt.Sprintf("El pago (%s) supera el saldo actual (%s).",
			FormatAmount(amount), FormatAmount(a.CurrentBalance)))
	}
	a.CurrentBalance -= amount
	if a.CurrentBalance < 0 {
		a.CurrentBalance = 0
	}
	a.Statement = nil
	return nil
}

// DebtInput carries the raw form values for manual debt entry.
type DebtInput struct {
	BankName       string `json:"bank_name"`
	CurrentBalance string `json:"current_balance"`
	OriginalAmount string `json:"original_amount"`
}

// ValidateDebt checks a manual debt entry, collecting every failing field.
// On success it returns the parsed amounts.
func ValidateDebt(in DebtInput) (bank string, balance int64, original *int64, errs FieldErrors) {
	errs = FieldErrors{}

	bank = strings.TrimSpace(in.BankName)
	if bank == "" {
		errs["bank_name"] = "El nombre del banco es requerido."
	}

	balance, balOK := ParseAmount(in.CurrentBalance)
	if in.CurrentBalance == "" || !balOK || balance <= 0 {
		errs["current_balance"] = "Ingresa un saldo actual válido mayor a $0."
	}

	if in.OriginalAmount != "" {
		orig, origOK := ParseAmount(in.OriginalAmount)
		if !origOK || orig <= 0 {
			errs["original_amount"] = "El monto original debe ser mayor a $0."
		} else if orig < balance {
			errs["original_amount"] = "El monto original no puede ser menor al saldo actual."
		} else {
			original = &orig
		}
	}

	if len(errs) > 0 {
		return "", 0, nil, errs
	}
	return bank, balance, original, nil
}
