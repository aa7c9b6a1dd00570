package mail

import (
	"gopkg.in/gomail.v2"
)

// Sender hands a message to a mail transport. The notification service
// depends on this interface so tests can swap the SMTP dialer out.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender dials the configured SMTP server per message. No pooling:
// collection mails are rare enough that a fresh dial is fine.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	if from == "" {
		from = username
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}
