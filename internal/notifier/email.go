package notifier

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/Maximiliano-zm/deudas-service/internal/config"
	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Configured reports whether SMTP delivery is set up at all.
func (s *Sender) Configured() bool {
	return s.cfg.SMTPHost != ""
}

// SendDueReminder emails a user about an open statement that is due soon or
// already overdue.
func (s *Sender) SendDueReminder(to, username, bankName string, amount, minimum int64, dueDate time.Time, daysLeft int) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	if daysLeft < 0 {
		e.Subject = fmt.Sprintf("Factura vencida: %s", bankName)
	} else {
		e.Subject = fmt.Sprintf("Recordatorio de pago: %s", bankName)
	}

	body := fmt.Sprintf("Hola %s,\n\n", username)
	switch {
	case daysLeft < 0:
		body += fmt.Sprintf(
			"La factura de %s por %s venció el %s.\n"+
				"Registra el pago cuanto antes para evitar más intereses.\n",
			bankName, ledger.FormatAmount(amount), dueDate.Format("2006-01-02"),
		)
	case daysLeft == 0:
		body += fmt.Sprintf(
			"La factura de %s por %s vence hoy.\n",
			bankName, ledger.FormatAmount(amount),
		)
	default:
		body += fmt.Sprintf(
			"La factura de %s por %s vence el %s (en %d día(s)).\n",
			bankName, ledger.FormatAmount(amount), dueDate.Format("2006-01-02"), daysLeft,
		)
	}
	if minimum > 0 {
		body += fmt.Sprintf("Pago mínimo: %s.\n", ledger.FormatAmount(minimum))
	}
	body += "\nSaludos,\nDeudas"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
