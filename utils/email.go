package utils

import (
	"fmt"

	"foundation_backend/config"
	"foundation_backend/model"

	"gopkg.in/gomail.v2"
)

// SendContactNotification forwards a persisted contact message to the
// configured recipient. The caller treats a failure as soft: the message is
// already stored, delivery is best effort.
func SendContactNotification(cfg config.SMTPConfig, msg model.ContactMessage) error {
	if cfg.Host == "" || cfg.Recipient == "" {
		return fmt.Errorf("smtp not configured")
	}

	subject := msg.Subject
	if subject == "" {
		subject = "New contact message"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", cfg.Recipient)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("[Website] %s", subject))
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message))

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return d.DialAndSend(m)
}
