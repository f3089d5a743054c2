package mailer

import (
	"fmt"
	"net/smtp"

	"bank-backoffice-api/logger"
)

// Mailer is the outbound mail capability. Sending is fire-and-forget from the
// caller's perspective: errors propagate, nothing is retried here.
type Mailer interface {
	Send(from, to, subject, body string) error
}

// SMTPMailer delivers messages through a plain SMTP relay.
type SMTPMailer struct {
	addr string
}

func NewSMTPMailer(host, port string) *SMTPMailer {
	return &SMTPMailer{addr: host + ":" + port}
}

func (m *SMTPMailer) Send(from, to, subject, body string) error {
	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body)

	if err := smtp.SendMail(m.addr, nil, from, []string{to}, msg); err != nil {
		logger.Log.WithError(err).WithField("to", to).Error("Failed to send mail")
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
