package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BankBalance is one debt's contribution to the portfolio, used both as
// aggregator input and as the per-bank breakdown the metrics charts plot.
type BankBalance struct {
	BankName string `json:"bank_name"`
	Balance  int64  `json:"balance"`
}

// Summary holds the portfolio aggregates. Everything here is derived on
// read; nothing is persisted.
type Summary struct {
	TotalDebt       int64         `json:"total_debt"`
	DebtCount       int           `json:"debt_count"`
	MonthlyIncome   int64         `json:"monthly_income"`
	RatioDefined    bool          `json:"ratio_defined"`
	RatioLabel      string        `json:"ratio"`
	RatioTier       Tier          `json:"ratio_tier"`
	CoveragePercent int           `json:"coverage_percent"`
	Banks           []BankBalance `json:"banks"`
}

var (
	ratioDanger  = decimal.NewFromInt(3)
	ratioWarning = decimal.NewFromFloat(1.5)
)

// Summarize computes total debt, the debt/income ratio and the income
// coverage percentage across a user's debts. A zero or unset income leaves
// the ratio undefined, rendered "—".
func Summarize(debts []BankBalance, monthlyIncome int64) Summary {
	s := Summary{
		DebtCount:     len(debts),
		MonthlyIncome: monthlyIncome,
		RatioLabel:    "—",
		RatioTier:     TierGood,
		Banks:         make([]BankBalance, len(debts)),
	}
	copy(s.Banks, debts)
	sort.SliceStable(s.Banks, func(i, j int) bool {
		return s.Banks[i].Balance > s.Banks[j].Balance
	})
	for _, d := range debts {
		s.TotalDebt += d.Balance
	}

	if monthlyIncome > 0 {
		ratio := decimal.NewFromInt(s.TotalDebt).Div(decimal.NewFromInt(monthlyIncome))
		s.RatioDefined = true
		s.RatioLabel = ratio.StringFixed(1) + "x"
		switch {
		case ratio.GreaterThan(ratioDanger):
			s.RatioTier = TierDanger
		case ratio.GreaterThan(ratioWarning):
			s.RatioTier = TierWarning
		}
	}

	if s.TotalDebt > 0 && monthlyIncome > 0 {
		cov := decimal.NewFromInt(monthlyIncome).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(s.TotalDebt)).
			Round(0).IntPart()
		if cov > 100 {
			cov = 100
		}
		if cov < 0 {
			cov = 0
		}
		s.CoveragePercent = int(cov)
	}
	return s
}
