package mailer

import "context"

// Message is a structured notification email.
type Message struct {
	Subject string
	HTML    string
	ReplyTo string
	To      []string
}

// Mailer delivers notification messages on a best-effort basis. Send must
// honor ctx cancellation; callers bound the wait with a timeout and treat
// failures as non-fatal.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
