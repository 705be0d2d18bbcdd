package notify

import (
	"context"

	"github.com/dealerdesk/leadkit/pkg/circuitbreaker"
)

// GuardedChannel decorates a Channel with circuit breaker protection. When
// the breaker is open, sends fail fast with a synthetic failure Result and
// the backing channel is never invoked; otherwise the delegate's outcome is
// recorded on the breaker and returned unchanged.
//
// GuardedChannel implements Channel, so any channel can be wrapped without
// the router knowing.
type GuardedChannel struct {
	delegate Channel
	breaker  *circuitbreaker.CircuitBreaker
}

// NewGuardedChannel wraps delegate with the given breaker. Both are required.
func NewGuardedChannel(delegate Channel, breaker *circuitbreaker.CircuitBreaker) (*GuardedChannel, error) {
	if delegate == nil {
		return nil, ErrNilDelegate
	}
	if breaker == nil {
		return nil, ErrNilBreaker
	}

	return &GuardedChannel{
		delegate: delegate,
		breaker:  breaker,
	}, nil
}

// Supports passes through to the delegate regardless of breaker state.
func (g *GuardedChannel) Supports(t ChannelType) bool {
	return g.delegate.Supports(t)
}

// Send checks the breaker, delegates when allowed, and records the outcome.
func (g *GuardedChannel) Send(ctx context.Context, n *Notification) Result {
	if !g.breaker.Allow() {
		return Undelivered(
			g.breaker.Name()+"-circuit-breaker",
			"circuit open, channel temporarily unavailable (will retry after timeout)",
		)
	}

	result := g.delegate.Send(ctx, n)

	if result.Success {
		g.breaker.RecordSuccess()
	} else {
		g.breaker.RecordFailure()
	}

	return result
}

// BreakerState returns the current state of the underlying breaker.
func (g *GuardedChannel) BreakerState() circuitbreaker.State {
	return g.breaker.State()
}
