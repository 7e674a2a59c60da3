package ledger

import "testing"

func TestSummarize(t *testing.T) {
	debts := []BankBalance{
		{BankName: "CMR", Balance: 300000},
		{BankName: "Santander", Balance: 500000},
	}
	s := Summarize(debts, 400000)

	if s.TotalDebt != 800000 || s.DebtCount != 2 {
		t.Errorf("total/count = %d/%d, want 800000/2", s.TotalDebt, s.DebtCount)
	}
	if !s.RatioDefined || s.RatioLabel != "2.0x" {
		t.Errorf("ratio = %q (defined=%v), want 2.0x", s.RatioLabel, s.RatioDefined)
	}
	if s.RatioTier != TierWarning {
		t.Errorf("tier = %s, want warning", s.RatioTier)
	}
	if s.CoveragePercent != 50 {
		t.Errorf("coverage = %d, want 50", s.CoveragePercent)
	}
	if s.Banks[0].BankName != "Santander" {
		t.Errorf("banks not ordered by balance desc: %v", s.Banks)
	}
}

func TestSummarizeRatioTiers(t *testing.T) {
	tests := []struct {
		total  int64
		income int64
		tier   Tier
	}{
		{400000, 400000, TierGood},     // 1.0x
		{600000, 400000, TierGood},     // exactly 1.5x is not "> 1.5"
		{640000, 400000, TierWarning},  // 1.6x
		{1200000, 400000, TierWarning}, // exactly 3.0x is not "> 3"
	}
	for _, tt := range tests {
		s := Summarize([]BankBalance{{BankName: "B", Balance: tt.total}}, tt.income)
		if s.RatioTier != tt.tier {
			t.Errorf("total %d income %d: tier = %s, want %s", tt.total, tt.income, s.RatioTier, tt.tier)
		}
	}
	s := Summarize([]BankBalance{{BankName: "B", Balance: 1300000}}, 400000)
	if s.RatioTier != TierDanger {
		t.Errorf("3.25x: tier = %s, want danger", s.RatioTier)
	}
}

func TestSummarizeNoIncome(t *testing.T) {
	s := Summarize([]BankBalance{{BankName: "B", Balance: 500000}}, 0)
	if s.RatioDefined || s.RatioLabel != "—" {
		t.Errorf("ratio = %q (defined=%v), want undefined", s.RatioLabel, s.RatioDefined)
	}
	if s.CoveragePercent != 0 {
		t.Errorf("coverage = %d, want 0", s.CoveragePercent)
	}
}

func TestSummarizeCoverageClamped(t *testing.T) {
	s := Summarize([]BankBalance{{BankName: "B", Balance: 100000}}, 900000)
	if s.CoveragePercent != 100 {
		t.Errorf("coverage = %d, want clamp at 100", s.CoveragePercent)
	}
}

func TestSummarizeEmptyPortfolio(t *testing.T) {
	s := Summarize(nil, 400000)
	if s.TotalDebt != 0 || s.DebtCount != 0 || s.CoveragePercent != 0 {
		t.Errorf("empty portfolio summary = %+v", s)
	}
	if !s.RatioDefined || s.RatioLabel != "0.0x" {
		t.Errorf("ratio with income and no debt = %q", s.RatioLabel)
	}
}
