package ledger

import "math"

// Tier is a semantic severity used for dashboard coloring.
type Tier string

const (
	TierGood    Tier = "good"
	TierWarning Tier = "warning"
	TierDanger  Tier = "danger"
)

// Progress describes how much of a debt's original amount has been repaid.
// When the original amount is unknown no percentage is defined and the debt
// renders at the highest severity.
type Progress struct {
	Defined     bool `json:"defined"`
	PaidPercent int  `json:"paid_percent"`
	Tier        Tier `json:"tier"`
}

// DebtProgress derives the paid percentage and status tier from the current
// balance against the original amount.
func DebtProgress(currentBalance int64, originalAmount *int64) Progress {
	if originalAmount == nil || *originalAmount <= 0 {
		return Progress{Defined: false, Tier: TierDanger}
	}
	orig := *originalAmount
	pct := int(math.Round(float64(orig-currentBalance) / float64(orig) * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	// A debt with anything still owing never reads as fully paid.
	if pct == 100 && currentBalance > 0 {
		pct = 99
	}
	tier := TierDanger
	switch {
	case pct >= 75:
		tier = TierGood
	case pct >= 40:
		tier = TierWarning
	}
	return Progress{Defined: true, PaidPercent: pct, Tier: tier}
}
