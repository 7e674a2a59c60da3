package ledger

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyDueDate(t *testing.T) {
	today := day(2026, time.March, 10)
	tests := []struct {
		name     string
		due      time.Time
		tier     DueTier
		daysLeft int
		label    string
	}{
		{"due today", today, DueToday, 0, "Vence hoy"},
		{"overdue singular", day(2026, time.March, 9), DueOverdue, -1, "Vencida hace 1 día"},
		{"overdue plural", day(2026, time.March, 8), DueOverdue, -2, "Vencida hace 2 días"},
		{"tomorrow singular", day(2026, time.March, 11), DueSoonUrgent, 1, "Vence en 1 día"},
		{"in three days", day(2026, time.March, 13), DueSoonUrgent, 3, "Vence en 3 días"},
		{"in four days", day(2026, time.March, 14), DueSoon, 4, "Vence en 4 días"},
		{"in seven days", day(2026, time.March, 17), DueSoon, 7, "Vence en 7 días"},
		{"in eight days", day(2026, time.March, 18), DueUpcoming, 8, "Vence 18 mar 2026"},
		{"far out", day(2026, time.May, 2), DueUpcoming, 53, "Vence 2 may 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDueDate(tt.due, today)
			if got.Tier != tt.tier || got.DaysLeft != tt.daysLeft || got.Label != tt.label {
				t.Errorf("got %+v, want tier=%s days=%d label=%q",
					got, tt.tier, tt.daysLeft, tt.label)
			}
		})
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	due := time.Date(2026, time.March, 11, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 10, 0, 30, 0, 0, time.UTC)
	if got := DaysUntil(due, today); got != 1 {
		t.Errorf("DaysUntil = %d, want 1", got)
	}
}
