package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail with gomail. An empty host disables it.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPMailer(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: user}
}

func (m *SMTPMailer) Enabled() bool {
	return m != nil && m.host != ""
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) error {
	if !m.Enabled() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
