package mailer

import (
	"context"
	"strings"

	"marketing-platform/pkg/logger"
)

// DevMailer logs notifications instead of sending them.
type DevMailer struct {
	log logger.Logger
}

func NewDevMailer(log logger.Logger) *DevMailer {
	return &DevMailer{log: log.WithComponent("mailer")}
}

func (m *DevMailer) Send(_ context.Context, msg Message) error {
	m.log.Info("Notification (dev mode, not sent)",
		logger.String("to", strings.Join(msg.To, ",")),
		logger.String("reply_to", msg.ReplyTo),
		logger.String("subject", msg.Subject),
	)
	return nil
}
