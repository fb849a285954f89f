package notify

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/shadysnails/salon-scheduler/internal/config"
)

// Mailer sends HTML mail over SMTP. With no SMTP host configured it
// stays in simulation mode and Send is a no-op, which keeps local
// development and tests from needing a mail server.
type Mailer struct {
	host   string
	port   int
	user   string
	pass   string
	from   string
	sender string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		from:   cfg.SenderEmail,
		sender: cfg.SenderName,
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != "" && m.from != ""
}

func (m *Mailer) Send(to, subject, bodyHTML string) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.sender, m.from))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", bodyHTML)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
