// Package mailer formats and dispatches the transactional emails: applicant
// confirmation, admin new-application notice, expiration digest and contact
// form notice. There is no retry; callers decide whether a failed send is
// fatal to their operation.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/config"
)

// Sender delivers a single message. Implementations fail with a transport
// error; they never retry.
type Sender interface {
	Send(to []string, subject, body string, html bool) error
}

// SMTPSender sends mail over SMTP using the configured transport settings.
type SMTPSender struct {
	cfg config.Mail
}

// NewSMTPSender creates a SMTPSender from mail settings.
func NewSMTPSender(cfg config.Mail) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers one message to every recipient. Returns the transport error
// as-is on failure.
func (s *SMTPSender) Send(to []string, subject, body string, html bool) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to...)
	m.SetHeader("Reply-To", s.cfg.From)
	m.SetHeader("Subject", subject)
	if html {
		m.SetBody("text/html", body)
	} else {
		m.SetBody("text/plain", body)
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if !s.cfg.UseTLS {
		d.SSL = false
		d.TLSConfig = nil
	}

	return d.DialAndSend(m)
}
