package service

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/scorredoira/email"
	"github.com/sirupsen/logrus"
)

type sentMail struct {
	addr string
	auth smtp.Auth
	msg  *email.Message
}

func newTestMailer(cfg MailerConfig) (*Mailer, *[]sentMail) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	mailer := NewMailer(cfg, log)
	sent := &[]sentMail{}
	mailer.send = func(addr string, auth smtp.Auth, m *email.Message) error {
		*sent = append(*sent, sentMail{addr: addr, auth: auth, msg: m})
		return nil
	}
	return mailer, sent
}

func TestMailerDisabledIsNoOp(t *testing.T) {
	mailer, sent := newTestMailer(MailerConfig{})

	if mailer.Enabled() {
		t.Fatalf("expected mailer without host to be disabled")
	}
	if err := mailer.SendContactNotification("owner@example.com", "Ada", "ada@example.com", "hi"); err != nil {
		t.Fatalf("expected disabled send to succeed quietly, got %v", err)
	}
	if len(*sent) != 0 {
		t.Fatalf("expected no mail to go out, got %d", len(*sent))
	}
}

func TestMailerSendsContactNotification(t *testing.T) {
	mailer, sent := newTestMailer(MailerConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user",
		Password: "pass",
		From:     "noreply@example.com",
		FromName: "Folio",
	})

	err := mailer.SendContactNotification("owner@example.com", "<Ada>", "ada@example.com", "line one\nline two")
	if err != nil {
		t.Fatalf("send notification: %v", err)
	}

	if len(*sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(*sent))
	}
	mail := (*sent)[0]
	if mail.addr != "smtp.example.com:587" {
		t.Fatalf("expected smtp address, got %q", mail.addr)
	}
	if mail.auth == nil {
		t.Fatalf("expected plain auth when a username is set")
	}
	if mail.msg.Subject != "[Contact] Contact Form Submission" {
		t.Fatalf("unexpected subject %q", mail.msg.Subject)
	}
	if len(mail.msg.To) != 1 || mail.msg.To[0] != "owner@example.com" {
		t.Fatalf("unexpected recipients %+v", mail.msg.To)
	}
	if mail.msg.From.Address != "noreply@example.com" || mail.msg.From.Name != "Folio" {
		t.Fatalf("unexpected sender %+v", mail.msg.From)
	}

	body := mail.msg.Body
	if !strings.Contains(body, "&lt;Ada&gt;") {
		t.Fatalf("expected the sender name to be escaped, got %q", body)
	}
	if !strings.Contains(body, "line one<br>line two") {
		t.Fatalf("expected newlines to become breaks, got %q", body)
	}
}

func TestMailerSendsConfirmationWithoutAuth(t *testing.T) {
	mailer, sent := newTestMailer(MailerConfig{
		Host:     "localhost",
		Port:     1025,
		From:     "noreply@example.com",
		FromName: "Folio",
	})

	if err := mailer.SendContactConfirmation("ada@example.com", "Ada"); err != nil {
		t.Fatalf("send confirmation: %v", err)
	}

	if len(*sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(*sent))
	}
	mail := (*sent)[0]
	if mail.auth != nil {
		t.Fatalf("expected no auth without a username")
	}
	if mail.msg.Subject != "Thanks for reaching out!" {
		t.Fatalf("unexpected subject %q", mail.msg.Subject)
	}
	if !strings.Contains(mail.msg.Body, "Hi Ada,") {
		t.Fatalf("expected greeting in body, got %q", mail.msg.Body)
	}
}

func TestMailerPropagatesSendErrors(t *testing.T) {
	mailer, _ := newTestMailer(MailerConfig{Host: "smtp.example.com", Port: 587})
	sendErr := errors.New("connection refused")
	mailer.send = func(string, smtp.Auth, *email.Message) error { return sendErr }

	if err := mailer.SendContactNotification("owner@example.com", "Ada", "ada@example.com", "hi"); !errors.Is(err, sendErr) {
		t.Fatalf("expected send error to surface, got %v", err)
	}
}
