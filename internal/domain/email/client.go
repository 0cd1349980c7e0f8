package email

import "context"

// Message is one outbound email with a plain-text body and an optional HTML
// alternative.
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
	HTML    string
}

// Client defines an interface for sending email via an external provider.
// This helps in decoupling the application logic from the specific mail library.
type Client interface {
	// Send delivers the message and returns a message id for log correlation.
	Send(ctx context.Context, msg Message) (string, error)
}
