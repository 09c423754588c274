package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/config"
	"github.com/blueline-rp/mdt-bot/mdt"
)

// AuditNotifier mirrors lifecycle events to the audit channel and,
// when configured, to a supervisor mailbox. Every delivery is best
// effort; failures are logged and never surfaced to the owner.
type AuditNotifier struct {
	session        *discordgo.Session
	channelID      string
	sendgridAPIKey string
	email          string
}

var _ mdt.Notifier = (*AuditNotifier)(nil)

// NewAuditNotifier initializes a new audit notifier from the config.
func NewAuditNotifier(session *discordgo.Session, conf *config.Config) *AuditNotifier {
	return &AuditNotifier{
		session:        session,
		channelID:      conf.AuditChannelID,
		sendgridAPIKey: conf.SendgridAPIKey,
		email:          conf.AuditEmail,
	}
}

// Notify posts the event text to the audit channel and queues the
// email mirror.
func (n *AuditNotifier) Notify(_ context.Context, text string) {
	if n.channelID != "" {
		if _, err := n.session.ChannelMessageSend(n.channelID, text); err != nil {
			zap.S().Warnw("failed to post audit message",
				"channel", n.channelID,
				"error", err,
			)
		}
	}
	if n.sendgridAPIKey != "" && n.email != "" {
		go n.sendEmail(text)
	}
}

func (n *AuditNotifier) sendEmail(text string) {
	from := mail.NewEmail("Blue Line MDT", "no-reply@bluelinerp.net")
	to := mail.NewEmail("", n.email)
	subject := "MDT audit event"
	htmlContent := fmt.Sprintf("<p>%s</p>", text)
	message := mail.NewSingleEmail(from, subject, to, text, htmlContent)
	client := sendgrid.NewSendClient(n.sendgridAPIKey)

	resp, err := client.Send(message)
	if err != nil {
		zap.S().Warnw("failed to send audit email", "error", err)
		return
	}
	if resp.StatusCode >= 400 {
		zap.S().Warnw("audit email rejected",
			"status", resp.StatusCode,
			"body", resp.Body,
		)
	}
}
