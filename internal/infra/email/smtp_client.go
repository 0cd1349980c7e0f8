// internal/infra/email/smtp_client.go
package email

import (
	"context"
	"fmt"

	domainEmail "birthday_notifier/internal/domain/email"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPClient implements the email Client interface using gopkg.in/gomail.v2.
type SMTPClient struct {
	dialer *gomail.Dialer
}

func NewSMTPClient(host string, port int, user, password string) *SMTPClient {
	return &SMTPClient{dialer: gomail.NewDialer(host, port, user, password)}
}

// Send delivers the message over SMTP. The returned id is generated locally
// for log correlation; plain SMTP does not issue provider message ids.
func (c *SMTPClient) Send(ctx context.Context, msg domainEmail.Message) (string, error) {
	// gomail is not context-aware; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	if err := c.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return uuid.NewString(), nil
}
