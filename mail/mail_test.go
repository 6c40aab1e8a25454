package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"podium/config"
)

func TestLogMailerSend(t *testing.T) {
	mailer := NewLogMailer(zap.NewNop().Sugar(), config.MailSettings{
		Host: "smtp.example.com",
		Port: 587,
		From: "cfp@example.com",
	})

	err := mailer.Send(context.Background(), Message{
		To:      []string{"speaker@example.com"},
		Subject: "Your proposal was received",
		Body:    "Thanks for submitting.",
	})
	assert.NoError(t, err)
}
