package external_services

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
)

// EmailService delivers notification e-mails over SMTP with PLAIN auth.
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// make sure EmailService implements contract.IEmailService
var _ contract.IEmailService = (*EmailService)(nil)

func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	if from == "" {
		from = username
	}
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
		send:        smtp.SendMail,
	}
}

// buildMessage renders a plain text RFC 5322 message. Header values are
// stripped of line breaks so user supplied text cannot inject headers.
func buildMessage(from, to, subject, body string) []byte {
	clean := strings.NewReplacer("\r", " ", "\n", " ")
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", clean.Replace(from))
	fmt.Fprintf(&b, "To: %s\r\n", clean.Replace(to))
	fmt.Fprintf(&b, "Subject: %s\r\n", clean.Replace(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// SendEmail sends one message. net/smtp takes no context, so a cancelled
// ctx is only honoured before the dial.
func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := net.JoinHostPort(es.Host, es.Port)
	if err := es.send(addr, auth, es.From, []string{to}, buildMessage(es.From, to, subject, body)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
