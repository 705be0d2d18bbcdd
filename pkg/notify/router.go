package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dealerdesk/leadkit/pkg/logger"
)

// routerVendor identifies routing-level failures that happened before any
// channel was reached.
const routerVendor = "router"

// DefaultDailyLimit caps notifications per lead per day. Three is a
// compliance-driven ceiling (TCPA/CAN-SPAM territory), not a throughput knob.
const DefaultDailyLimit = 3

// Router is the single entry point for outbound notification delivery. It
// enforces the per-lead daily rate limit and fails over across channels in
// priority order. Safe for concurrent use.
type Router struct {
	channels   []Channel
	ledger     *dailyLedger
	dailyLimit int
	now        func() time.Time
	log        *slog.Logger
	metrics    *Metrics
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the logger used for failover and rate-limit events.
func WithLogger(log *slog.Logger) RouterOption {
	return func(r *Router) {
		if log != nil {
			r.log = log
		}
	}
}

// WithClock injects the time source used for rate-limit day windows.
// Nil clocks are ignored.
func WithClock(now func() time.Time) RouterOption {
	return func(r *Router) {
		if now != nil {
			r.now = now
		}
	}
}

// WithDailyLimit overrides the per-lead daily ceiling. Non-positive values
// fall back to the default.
func WithDailyLimit(n int) RouterOption {
	return func(r *Router) {
		if n > 0 {
			r.dailyLimit = n
		}
	}
}

// WithMetrics attaches Prometheus delivery metrics to the router.
func WithMetrics(m *Metrics) RouterOption {
	return func(r *Router) {
		r.metrics = m
	}
}

// NewRouter creates a router over the given channels, highest priority first.
// The channel list is the only construction-time requirement; an empty or nil
// list returns ErrNoChannels.
func NewRouter(channels []Channel, opts ...RouterOption) (*Router, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	r := &Router{
		channels:   channels,
		ledger:     newDailyLedger(),
		dailyLimit: DefaultDailyLimit,
		now:        time.Now,
		log:        slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Route delivers a notification through the first capable, healthy channel.
//
// The attempt reserves a rate-limit slot before touching any channel, so
// retries during an outage still count against the ceiling; a fully failed
// pass releases the slot again so outages do not permanently burn quota.
// Route never returns delivery-domain problems as panics; every outcome is
// a Result the caller inspects.
func (r *Router) Route(ctx context.Context, n *Notification) Result {
	if n == nil {
		return Undelivered(routerVendor, "notification was nil")
	}

	key := r.rateLimitKey(n.DealerID, n.LeadID)
	if !r.ledger.reserve(key, r.dailyLimit) {
		r.metrics.recordRateLimited()
		r.log.LogAttrs(ctx, slog.LevelWarn, "Notification rate limit exceeded",
			logger.DealerID(n.DealerID),
			logger.LeadID(n.LeadID),
		)
		return Undelivered(routerVendor,
			fmt.Sprintf("rate limit exceeded (max %d per lead per day)", r.dailyLimit))
	}

	var lastFailure *Result
	for _, ch := range r.channels {
		if !ch.Supports(n.Type) {
			continue
		}

		result := ch.Send(ctx, n)
		r.metrics.recordDelivery(result.Vendor, result.Success)
		if result.Success {
			// The reserved slot stands for delivered notifications.
			return result
		}

		r.log.LogAttrs(ctx, slog.LevelWarn, "Channel failed, trying next in priority order",
			slog.String("vendor", result.Vendor),
			slog.String("channel_type", string(n.Type)),
			logger.DealerID(n.DealerID),
			logger.LeadID(n.LeadID),
			slog.String("reason", result.Err),
		)
		lastFailure = &result
	}

	// Nothing was delivered; give the slot back so a failed pass does not
	// consume the lead's quota.
	r.ledger.release(key)
	r.metrics.recordExhausted()

	if lastFailure != nil {
		return *lastFailure
	}
	return Undelivered(routerVendor, fmt.Sprintf("no channel supports type %s", n.Type))
}

// rateLimitKey combines dealer, lead and calendar date, giving each dealer an
// independent daily window per lead.
func (r *Router) rateLimitKey(dealerID, leadID string) string {
	return dealerID + ":" + leadID + ":" + r.now().Format("2006-01-02")
}
