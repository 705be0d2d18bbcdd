// Package notify routes outbound notifications (email, SMS, push) across
// prioritized delivery channels with failover, per-lead daily rate limiting,
// and optional circuit breaker isolation per channel.
//
// # Architecture
//
// Three pieces cooperate:
//
//   - Channel: the contract every delivery adapter implements: a pure
//     capability check plus a synchronous Send that reports a structured
//     Result instead of returning errors for delivery failures.
//   - Router: the single entry point. It reserves a rate-limit slot, walks
//     the channel list in priority order, returns the first success, and
//     releases the slot again when every capable channel fails.
//   - GuardedChannel: a decorator composing any Channel with a
//     circuitbreaker.CircuitBreaker so a failing vendor is skipped cheaply
//     until its cooldown expires.
//
// # Rate limiting
//
// The router caps attempts at three per lead per day (per dealer), counted
// against an in-memory ledger keyed by dealer, lead and calendar date. The
// check-and-reserve is atomic: concurrent calls cannot jointly exceed the
// ceiling. Attempts are counted, not deliveries, but a pass in which every
// channel fails releases its reservation, so vendor outages do not consume
// a customer's quota. The design is single-process; distributed coordination
// is out of scope.
//
// # Usage
//
//	smsBreaker := circuitbreaker.New("twilio-sms")
//	sms, _ := notify.NewGuardedChannel(smsChannel, smsBreaker)
//
//	router, err := notify.NewRouter([]notify.Channel{sms, emailChannel})
//	if err != nil {
//	    // empty channel list
//	}
//
//	n, err := notify.NewSMS("dealer-1", "tenant-1", "site-1", "lead-42",
//	    "Your vehicle is ready for pickup", "+14155550123")
//	if err != nil {
//	    // validation failure
//	}
//
//	result := router.Route(ctx, n)
//	if !result.Success {
//	    // inspect result.Vendor / result.Err
//	}
//
// # Error handling
//
// Route is total: bad input, rate limiting, unsupported types and vendor
// outages all come back as failure Results distinguishable by Vendor and Err.
// The only hard error in the package is construction-time misuse (empty
// channel list, nil delegate or breaker).
package notify
