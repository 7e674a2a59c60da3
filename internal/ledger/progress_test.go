package ledger

import "testing"

func i64(v int64) *int64 { return &v }

func TestDebtProgress(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		original *int64
		defined  bool
		percent  int
		tier     Tier
	}{
		{"no original", 500000, nil, false, 0, TierDanger},
		{"zero original", 500000, i64(0), false, 0, TierDanger},
		{"negative original", 500000, i64(-100), false, 0, TierDanger},
		{"nothing paid", 1200000, i64(1200000), true, 0, TierDanger},
		{"fully paid", 0, i64(1200000), true, 100, TierGood},
		{"a third paid", 800000, i64(1200000), true, 33, TierDanger},
		{"warning tier at 40", 600000, i64(1000000), true, 40, TierWarning},
		{"good tier at 75", 250000, i64(1000000), true, 75, TierGood},
		{"just below good", 260000, i64(1000000), true, 74, TierWarning},
		{"rounds half up", 374999, i64(1000000), true, 63, TierWarning},
		{"never 100 while owing", 1, i64(1000000), true, 99, TierGood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DebtProgress(tt.balance, tt.original)
			if got.Defined != tt.defined || got.PaidPercent != tt.percent || got.Tier != tt.tier {
				t.Errorf("got %+v, want defined=%v percent=%d tier=%s",
					got, tt.defined, tt.percent, tt.tier)
			}
		})
	}
}

func TestDebtProgressBounds(t *testing.T) {
	// Paid percent stays inside [0,100] and hits 100 only at zero balance.
	orig := int64(1000)
	for balance := int64(0); balance <= orig; balance++ {
		p := DebtProgress(balance, &orig)
		if p.PaidPercent < 0 || p.PaidPercent > 100 {
			t.Fatalf("balance %d: percent %d out of range", balance, p.PaidPercent)
		}
		if (p.PaidPercent == 100) != (balance == 0) {
			t.Fatalf("balance %d: percent %d, 100%% must mean zero balance", balance, p.PaidPercent)
		}
	}
}
