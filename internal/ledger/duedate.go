package ledger

import (
	"fmt"
	"time"
)

// DueTier classifies how urgent an upcoming statement due date is.
type DueTier string

const (
	DueOverdue    DueTier = "overdue"
	DueToday      DueTier = "due_today"
	DueSoonUrgent DueTier = "due_soon_urgent" // 1..3 days left
	DueSoon       DueTier = "due_soon"        // 4..7 days left
	DueUpcoming   DueTier = "upcoming"        // more than a week out
)

// DueStatus is the derived urgency of a due date relative to "today".
type DueStatus struct {
	Tier     DueTier `json:"tier"`
	DaysLeft int     `json:"days_left"`
	Label    string  `json:"label"`
}

var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

// FormatDueDate renders a date the way es-CL does: "5 ene 2026".
func FormatDueDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// DaysUntil returns whole days from today until due, negative when past.
// Both values are collapsed to date-only before subtracting so time-of-day
// noise never shifts the count.
func DaysUntil(due, today time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}

func dias(n int) string {
	if n == 1 {
		return "día"
	}
	return "días"
}

// ClassifyDueDate derives the urgency tier and display label for a due date.
// Callers supply "today" explicitly.
func ClassifyDueDate(due, today time.Time) DueStatus {
	left := DaysUntil(due, today)
	switch {
	case left < 0:
		n := -left
		return DueStatus{
			Tier:     DueOverdue,
			DaysLeft: left,
			Label:    fmt.Sprintf("Vencida hace %d %s", n, dias(n)),
		}
	case left == 0:
		return DueStatus{Tier: DueToday, DaysLeft: 0, Label: "Vence hoy"}
	case left <= 3:
		return DueStatus{
			Tier:     DueSoonUrgent,
			DaysLeft: left,
			Label:    fmt.Sprintf("Vence en %d %s", left, dias(left)),
		}
	case left <= 7:
		return DueStatus{
			Tier:     DueSoon,
			DaysLeft: left,
			Label:    fmt.Sprintf("Vence en %d días", left),
		}
	default:
		return DueStatus{
			Tier:     DueUpcoming,
			DaysLeft: left,
			Label:    "Vence " + FormatDueDate(due),
		}
	}
}
