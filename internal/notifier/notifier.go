package notifier

import (
	"fmt"
	"time"

	"github.com/Maximiliano-zm/deudas-service/internal/config"
	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/Maximiliano-zm/deudas-service/internal/repository"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Notifier runs the daily due-date sweep: every open statement that is
// overdue or due in one of the configured day offsets gets a reminder email.
type Notifier struct {
	cron   *cron.Cron
	cfg    *config.Config
	repo   *repository.Repository
	sender *Sender
	log    *logrus.Logger
}

// New creates the notifier; Start schedules it.
func New(cfg *config.Config, repo *repository.Repository, sender *Sender, log *logrus.Logger) *Notifier {
	return &Notifier{
		cron:   cron.New(),
		cfg:    cfg,
		repo:   repo,
		sender: sender,
		log:    log,
	}
}

// Start registers the reminder sweep on the configured cron expression.
func (n *Notifier) Start() error {
	if !n.sender.Configured() {
		n.log.Info("SMTP not configured, due-date reminders disabled")
		return nil
	}
	if _, err := n.cron.AddFunc(n.cfg.ReminderCron, n.sendDueReminders); err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}
	n.cron.Start()
	n.log.Infof("Due-date reminders scheduled: %s", n.cfg.ReminderCron)
	return nil
}

// Stop halts the scheduler.
func (n *Notifier) Stop() {
	n.cron.Stop()
}

func (n *Notifier) sendDueReminders() {
	statements, err := n.repo.ListOpenStatements()
	if err != nil {
		n.log.Errorf("Reminder sweep failed: %v", err)
		return
	}

	today := time.Now()
	sent := 0
	for _, st := range statements {
		if !st.DueDate.Valid {
			continue
		}
		daysLeft := ledger.DaysUntil(st.DueDate.Time, today)
		if !n.shouldRemind(daysLeft) {
			continue
		}
		err := n.sender.SendDueReminder(st.Email, st.Username, st.BankName,
			st.StatementBalance, st.MinimumPayment, st.DueDate.Time, daysLeft)
		if err != nil {
			continue // logged by the sender, keep sweeping
		}
		sent++
	}
	n.log.Infof("Reminder sweep done: %d open statements, %d reminders sent", len(statements), sent)
}

func (n *Notifier) shouldRemind(daysLeft int) bool {
	if daysLeft < 0 {
		return true
	}
	for _, d := range n.cfg.RemindDays {
		if daysLeft == d {
			return true
		}
	}
	return false
}
