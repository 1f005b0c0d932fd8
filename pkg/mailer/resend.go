package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"

	"marketing-platform/pkg/logger"
)

// ResendMailer sends notifications through the Resend HTTP API.
type ResendMailer struct {
	client *resend.Client
	from   string
	log    logger.Logger
}

func NewResendMailer(apiKey, from string, log logger.Logger) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		log:    log.WithComponent("mailer"),
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}

	m.log.Info("Notification sent",
		logger.String("message_id", sent.Id),
		logger.String("subject", msg.Subject),
	)
	return nil
}
