// Package mail defines the outbound mail boundary. Transport internals
// live behind the Mailer interface; the in-repo implementation records
// messages to the log, which is what development and testing use.
package mail

import (
	"context"

	"go.uber.org/zap"

	"podium/config"
)

// Message is one outbound mail.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer sends messages. Implementations must be safe for concurrent
// use by request handlers.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the application log instead of a wire
// transport.
type LogMailer struct {
	sugar    *zap.SugaredLogger
	settings config.MailSettings
}

func NewLogMailer(sugar *zap.SugaredLogger, settings config.MailSettings) *LogMailer {
	return &LogMailer{sugar: sugar, settings: settings}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.sugar.Infow("Mail delivered to log",
		"from", m.settings.From,
		"to", msg.To,
		"subject", msg.Subject,
		"bytes", len(msg.Body))
	return nil
}
