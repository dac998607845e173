package services

import (
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

// Mailer is the outbound email collaborator. Implementations report
// delivery failure through the returned error; services wrap it as
// models.ErrDeliveryFailed.
type Mailer interface {
	SendResetToken(email, token string) error
	SendInvoice(email string, attachmentName string, attachmentData []byte) error
}

// SMTPMailer delivers through a plain SMTP account.
type SMTPMailer struct {
	Host     string
	Port     int
	From     string
	Password string
}

func NewSMTPMailer(host string, port int, from, password string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, From: from, Password: password}
}

func (m *SMTPMailer) SendResetToken(email, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password reset")
	msg.SetBody("text/plain", "Use this token to reset your password: "+token)

	d := gomail.NewDialer(m.Host, m.Port, m.From, m.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

func (m *SMTPMailer) SendInvoice(email, attachmentName string, attachmentData []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your consultation bill")
	msg.SetBody("text/plain", "Please find your bill and prescription attached.")
	msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachmentData)
		return err
	}))

	d := gomail.NewDialer(m.Host, m.Port, m.From, m.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
