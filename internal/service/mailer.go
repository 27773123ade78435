package service

import (
	"fmt"
	"html"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/scorredoira/email"
	"github.com/sirupsen/logrus"
)

// MailerConfig carries the SMTP settings for outbound notifications.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Mailer sends contact form notifications over SMTP. With no host
// configured every send becomes a logged no-op, so the contact form keeps
// working on machines without mail credentials.
type Mailer struct {
	cfg  MailerConfig
	log  *logrus.Logger
	send func(addr string, auth smtp.Auth, m *email.Message) error
}

// NewMailer creates a Mailer.
func NewMailer(cfg MailerConfig, log *logrus.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log, send: email.Send}
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool {
	return strings.TrimSpace(m.cfg.Host) != ""
}

// SendContactNotification mails the site owner about a new contact
// message.
func (m *Mailer) SendContactNotification(to, name, fromEmail, message string) error {
	body := fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>From:</strong> %s (%s)</p><hr>"+
			"<p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(fromEmail),
		strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"),
	)
	return m.sendHTML(to, "[Contact] Contact Form Submission", body)
}

// SendContactConfirmation thanks the sender for reaching out.
func (m *Mailer) SendContactConfirmation(to, name string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Thanks for reaching out! I've received your message and will get back to you soon.</p>"+
			"<p>Best,<br>%s</p>",
		html.EscapeString(name),
		html.EscapeString(m.cfg.FromName),
	)
	return m.sendHTML(to, "Thanks for reaching out!", body)
}

func (m *Mailer) sendHTML(to, subject, htmlBody string) error {
	if !m.Enabled() {
		m.log.Info("smtp host is not configured, skipping email to ", to)
		return nil
	}

	msg := email.NewHTMLMessage(subject, htmlBody)
	msg.From = mail.Address{Name: m.cfg.FromName, Address: m.cfg.From}
	msg.To = []string{to}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	m.log.Info("sending email to ", to)
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, auth, msg); err != nil {
		m.log.Errorf("error sending email to %s: %v", to, err)
		return err
	}
	return nil
}
