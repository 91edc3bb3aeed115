// Package mailer is the outbound email transport for the contact relay.
package mailer

import (
	"alexsimon-listings/pkg/logger"

	gomail "gopkg.in/gomail.v2"
)

// Message is one outbound email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends one message; tests substitute a recording fake.
type Mailer interface {
	Send(msg *Message) error
}

// SMTPMailer delivers through a real SMTP transport.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(msg *Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}
	return m.dialer.DialAndSend(gm)
}

// ConsoleMailer logs instead of sending. Used when no SMTP credentials are
// configured; the relay still reports success on this path.
type ConsoleMailer struct{}

func (m *ConsoleMailer) Send(msg *Message) error {
	logger.GlobalLogger.Println("=== NOUVEAU MESSAGE DE CONTACT ===")
	logger.GlobalLogger.Printf("Destinataire: %s", msg.To)
	logger.GlobalLogger.Printf("%s", msg.Text)
	logger.GlobalLogger.Println("==================================")
	return nil
}
