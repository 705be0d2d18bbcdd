package notify

import "context"

// Channel is a delivery mechanism for outbound notifications: an email
// provider, an SMS vendor, a push gateway.
//
// Supports must be pure; the router calls it to filter channels before every
// attempt. Send must never return delivery failures as panics or errors;
// every delivery-layer problem, including a nil notification, is reported as
// a failure Result so the router can fail over to the next channel.
type Channel interface {
	// Supports reports whether this channel can carry the given message type.
	Supports(t ChannelType) bool

	// Send synchronously attempts delivery and reports the structured outcome.
	Send(ctx context.Context, n *Notification) Result
}
