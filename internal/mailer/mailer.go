package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"rehab-app/internal/config"
)

// Mailer sends notification mail from professionals to guardians over
// plain SMTP with STARTTLS auth.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one HTML mail to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	if to == "" || subject == "" || body == "" {
		return fmt.Errorf("to, subject and body are required")
	}
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("smtp credentials are not configured")
	}

	var msg strings.Builder
	msg.WriteString("From: " + m.cfg.Username + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("<div><p>" + body + "</p></div>\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
