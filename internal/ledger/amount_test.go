package ledger

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"1.200.000", 1200000, true},
		{"1,200,000", 1200000, true},
		{"1200000", 1200000, true},
		{"$ 1.200.000", 1200000, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"$.,", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAmount(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1.000"},
		{800000, "$800.000"},
		{1200000, "$1.200.000"},
		{-45000, "-$45.000"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, amount := range []int64{0, 1, 999, 1000, 45000, 800000, 1200000, 987654321} {
		got, ok := ParseAmount(FormatAmount(amount))
		if !ok || got != amount {
			t.Errorf("round trip of %d gave (%d, %v)", amount, got, ok)
		}
	}
}
