// Package mailer sends transactional verification emails over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
)

// Sender delivers a verification link to a user's mailbox.
type Sender interface {
	// SendVerification emails an absolute confirmation link embedding the token.
	SendVerification(to, displayName, token string) error
}

// SMTP sends mail through a plain SMTP relay.
type SMTP struct {
	host     string
	port     string
	username string
	password string
	from     string
	baseURL  string
}

// NewSMTP constructs an SMTP sender. Auth is skipped when username is empty.
func NewSMTP(host, port, username, password, from, baseURL string) *SMTP {
	return &SMTP{host: host, port: port, username: username, password: password, from: from, baseURL: baseURL}
}

// SendVerification builds the message and hands it to the relay.
func (m *SMTP) SendVerification(to, displayName, token string) error {
	link := VerificationLink(m.baseURL, token)
	msg := BuildMessage(m.from, to, verificationSubject, VerificationBody(displayName, link))

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

const verificationSubject = "Подтверждение email на платформе NS Platform"

// VerificationLink returns the absolute confirmation URL for a token.
func VerificationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/api/auth/verify/%s", baseURL, token)
}

// VerificationBody renders the plain-text letter.
func VerificationBody(displayName, link string) string {
	return fmt.Sprintf(`Здравствуйте, %s!

Для завершения регистрации и подтверждения вашего email адреса,
пожалуйста, перейдите по следующей ссылке:

%s

Ссылка действительна в течение 24 часов.

Если вы не регистрировались на NS Platform, пожалуйста, проигнорируйте это письмо.

С уважением,
Команда NS Platform
`, displayName, link)
}

// BuildMessage assembles RFC 5322 headers and the body.
func BuildMessage(from, to, subject, body string) []byte {
	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		body
	return []byte(msg)
}
