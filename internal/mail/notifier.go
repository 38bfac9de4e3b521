// Package mail sends internal notification emails over SMTP. Delivery is
// best-effort: a failed send is logged and never fails the originating
// request.
package mail

import (
	"fmt"

	"github.com/northbridge-capital/broker-api/internal/config"
	"github.com/northbridge-capital/broker-api/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Notifier sends notifications to the broker team inbox. All methods are
// no-ops when mail is disabled in config.
type Notifier struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

func NewNotifier(cfg *config.MailConfig, logger *zap.Logger) *Notifier {
	return &Notifier{cfg: cfg, logger: logger}
}

// NotifyHotLead alerts the team that a hot lead just came in
func (n *Notifier) NotifyHotLead(lead *domain.Lead) {
	if !n.cfg.Enabled {
		return
	}

	subject := fmt.Sprintf("Hot lead: %s (score %d)", lead.FullName, lead.Score)
	body := fmt.Sprintf(
		"A new hot lead was captured.\r\n\r\n"+
			"Name: %s\r\nEmail: %s\r\nPhone: %s\r\nCompany: %s\r\n"+
			"Location: %s, %s\r\nAmount: £%.2f\r\nPurpose: %s\r\nUrgency: %s\r\n"+
			"Score: %d (%s)\r\n",
		lead.FullName, lead.Email, lead.Phone, lead.CompanyName,
		lead.Town, lead.County, lead.Amount, lead.Purpose, lead.Urgency,
		lead.Score, lead.Priority,
	)

	n.send(subject, body, "lead_id", lead.ID.String())
}

// NotifyContactSubmission alerts the team to a new contact-form message
func (n *Notifier) NotifyContactSubmission(submission *domain.ContactSubmission) {
	if !n.cfg.Enabled {
		return
	}

	subject := fmt.Sprintf("Contact form: %s", submission.Subject)
	body := fmt.Sprintf(
		"New contact submission.\r\n\r\nName: %s\r\nEmail: %s\r\nPhone: %s\r\n\r\n%s\r\n",
		submission.Name, submission.Email, submission.Phone, submission.Message,
	)

	n.send(subject, body, "submission_id", submission.ID.String())
}

func (n *Notifier) send(subject, body, refKey, refValue string) {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.NotifyTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		n.logger.Warn("failed to send notification email",
			zap.String("subject", subject),
			zap.String(refKey, refValue),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("notification email sent",
		zap.String("subject", subject),
		zap.String(refKey, refValue),
	)
}
