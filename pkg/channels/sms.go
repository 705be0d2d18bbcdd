package channels

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dealerdesk/leadkit/pkg/logger"
	"github.com/dealerdesk/leadkit/pkg/notify"
)

const smsVendor = "sms-adapter"

// SMSGateway is the vendor-facing contract for text delivery. Implementations
// return the provider's message identifier on success.
type SMSGateway interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// SMSChannel delivers SMS notifications through a text vendor gateway.
type SMSChannel struct {
	gateway SMSGateway
	log     *slog.Logger
}

// SMSChannelOption configures an SMSChannel.
type SMSChannelOption func(*SMSChannel)

// WithSMSLogger sets the logger for delivery diagnostics.
func WithSMSLogger(log *slog.Logger) SMSChannelOption {
	return func(c *SMSChannel) {
		if log != nil {
			c.log = log
		}
	}
}

// NewSMSChannel wraps an SMS gateway as a notification channel.
func NewSMSChannel(gateway SMSGateway, opts ...SMSChannelOption) (*SMSChannel, error) {
	if gateway == nil {
		return nil, ErrNilGateway
	}

	c := &SMSChannel{
		gateway: gateway,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Supports reports true for SMS only.
func (c *SMSChannel) Supports(t notify.ChannelType) bool {
	return t == notify.TypeSMS
}

// Send delivers the notification as a text message. All failures come back as
// a failure Result; Send never panics on bad input.
func (c *SMSChannel) Send(ctx context.Context, n *notify.Notification) notify.Result {
	if n == nil {
		return notify.Undelivered(smsVendor, "notification was nil")
	}

	messageID, err := c.gateway.SendSMS(ctx, n.To, n.Body)
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "SMS delivery failed",
			logger.DealerID(n.DealerID),
			logger.LeadID(n.LeadID),
			logger.Error(err),
		)
		return notify.Undelivered(smsVendor, err.Error())
	}
	if messageID == "" {
		messageID = "sms-" + uuid.NewString()
	}

	c.log.LogAttrs(ctx, slog.LevelDebug, "SMS delivered",
		logger.DealerID(n.DealerID),
		logger.LeadID(n.LeadID),
		logger.MessageID(messageID),
	)
	return notify.Delivered(smsVendor, messageID)
}

// ErrGatewayOutage is returned by SimulatedSMSGateway while an outage is
// toggled on.
var ErrGatewayOutage = errors.New("channels.errors.gateway_outage")

// SimulatedSMSGateway is an in-memory SMSGateway for development and tests.
// It records every message and can simulate a vendor outage.
type SimulatedSMSGateway struct {
	mu     sync.Mutex
	outage bool
	sent   []SimulatedMessage
}

// SimulatedMessage is a single message captured by a simulated gateway.
type SimulatedMessage struct {
	To   string
	Body string
}

// NewSimulatedSMSGateway creates a healthy simulated gateway.
func NewSimulatedSMSGateway() *SimulatedSMSGateway {
	return &SimulatedSMSGateway{}
}

// SetOutage toggles simulated vendor downtime.
func (g *SimulatedSMSGateway) SetOutage(down bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outage = down
}

// SendSMS records the message, or fails while an outage is active.
func (g *SimulatedSMSGateway) SendSMS(ctx context.Context, to, body string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outage {
		return "", ErrGatewayOutage
	}

	g.sent = append(g.sent, SimulatedMessage{To: to, Body: body})
	return "sms-" + uuid.NewString(), nil
}

// Sent returns a copy of all captured messages.
func (g *SimulatedSMSGateway) Sent() []SimulatedMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]SimulatedMessage, len(g.sent))
	copy(out, g.sent)
	return out
}
