package channels

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dealerdesk/leadkit/pkg/logger"
	"github.com/dealerdesk/leadkit/pkg/notify"
)

const pushVendor = "push-adapter"

// PushGateway is the vendor-facing contract for mobile push delivery.
type PushGateway interface {
	SendPush(ctx context.Context, deviceToken, title, body string) (string, error)
}

// PushChannel delivers push notifications through a push vendor gateway.
type PushChannel struct {
	gateway PushGateway
	log     *slog.Logger
}

// PushChannelOption configures a PushChannel.
type PushChannelOption func(*PushChannel)

// WithPushLogger sets the logger for delivery diagnostics.
func WithPushLogger(log *slog.Logger) PushChannelOption {
	return func(c *PushChannel) {
		if log != nil {
			c.log = log
		}
	}
}

// NewPushChannel wraps a push gateway as a notification channel.
func NewPushChannel(gateway PushGateway, opts ...PushChannelOption) (*PushChannel, error) {
	if gateway == nil {
		return nil, ErrNilGateway
	}

	c := &PushChannel{
		gateway: gateway,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Supports reports true for PUSH only.
func (c *PushChannel) Supports(t notify.ChannelType) bool {
	return t == notify.TypePush
}

// Send delivers the notification as a mobile push. All failures come back as
// a failure Result; Send never panics on bad input.
func (c *PushChannel) Send(ctx context.Context, n *notify.Notification) notify.Result {
	if n == nil {
		return notify.Undelivered(pushVendor, "notification was nil")
	}

	messageID, err := c.gateway.SendPush(ctx, n.To, n.Subject, n.Body)
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "Push delivery failed",
			logger.DealerID(n.DealerID),
			logger.LeadID(n.LeadID),
			logger.Error(err),
		)
		return notify.Undelivered(pushVendor, err.Error())
	}
	if messageID == "" {
		messageID = "push-" + uuid.NewString()
	}

	return notify.Delivered(pushVendor, messageID)
}

// SimulatedPushGateway is an in-memory PushGateway for development and tests.
type SimulatedPushGateway struct {
	mu     sync.Mutex
	outage bool
	sent   []SimulatedMessage
}

// NewSimulatedPushGateway creates a healthy simulated gateway.
func NewSimulatedPushGateway() *SimulatedPushGateway {
	return &SimulatedPushGateway{}
}

// SetOutage toggles simulated vendor downtime.
func (g *SimulatedPushGateway) SetOutage(down bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outage = down
}

// SendPush records the message, or fails while an outage is active.
func (g *SimulatedPushGateway) SendPush(ctx context.Context, deviceToken, title, body string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outage {
		return "", ErrGatewayOutage
	}

	g.sent = append(g.sent, SimulatedMessage{To: deviceToken, Body: body})
	return "push-" + uuid.NewString(), nil
}

// Sent returns a copy of all captured messages.
func (g *SimulatedPushGateway) Sent() []SimulatedMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]SimulatedMessage, len(g.sent))
	copy(out, g.sent)
	return out
}
