package channels

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dealerdesk/leadkit/pkg/email"
	"github.com/dealerdesk/leadkit/pkg/logger"
	"github.com/dealerdesk/leadkit/pkg/notify"
)

const emailVendor = "email-adapter"

// defaultSubject is used for messages that arrive without one, typically SMS
// bodies falling back to email delivery.
const defaultSubject = "New message from your dealership"

// EmailChannel delivers notifications through a transactional email provider.
// It handles EMAIL natively and also accepts SMS, acting as the fallback
// transport when every text vendor is down.
type EmailChannel struct {
	sender email.EmailSender
	log    *slog.Logger
}

// EmailChannelOption configures an EmailChannel.
type EmailChannelOption func(*EmailChannel)

// WithEmailLogger sets the logger for delivery diagnostics.
func WithEmailLogger(log *slog.Logger) EmailChannelOption {
	return func(c *EmailChannel) {
		if log != nil {
			c.log = log
		}
	}
}

// NewEmailChannel wraps an email sender as a notification channel.
func NewEmailChannel(sender email.EmailSender, opts ...EmailChannelOption) (*EmailChannel, error) {
	if sender == nil {
		return nil, ErrNilSender
	}

	c := &EmailChannel{
		sender: sender,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Supports reports true for EMAIL and SMS. SMS support is the fallback path:
// the text body is emailed to the lead instead.
func (c *EmailChannel) Supports(t notify.ChannelType) bool {
	return t == notify.TypeEmail || t == notify.TypeSMS
}

// Send delivers the notification as an email. All failures come back as a
// failure Result; Send never panics on bad input.
func (c *EmailChannel) Send(ctx context.Context, n *notify.Notification) notify.Result {
	if n == nil {
		return notify.Undelivered(emailVendor, "notification was nil")
	}

	subject := n.Subject
	if subject == "" {
		subject = defaultSubject
	}

	err := c.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   n.To,
		Subject:  subject,
		BodyHTML: n.Body,
		Tag:      "lead-notification",
	})
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "Email delivery failed",
			logger.DealerID(n.DealerID),
			logger.LeadID(n.LeadID),
			logger.Error(err),
		)
		return notify.Undelivered(emailVendor, err.Error())
	}

	messageID := "email-" + uuid.NewString()
	c.log.LogAttrs(ctx, slog.LevelDebug, "Email delivered",
		logger.DealerID(n.DealerID),
		logger.LeadID(n.LeadID),
		logger.MessageID(messageID),
	)
	return notify.Delivered(emailVendor, messageID)
}
