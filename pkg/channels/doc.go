// Package channels provides concrete notify.Channel implementations for the
// delivery vendors the router fails over across: transactional email, SMS and
// mobile push.
//
// # Architecture
//
// Each adapter wraps a vendor-facing client behind the notify.Channel
// contract:
//
//   - EmailChannel wraps an email.EmailSender. It accepts EMAIL natively and
//     also accepts SMS, making it the fallback transport when text vendors
//     are down.
//   - SMSChannel wraps an SMSGateway.
//   - PushChannel wraps a PushGateway.
//
// Adapters never return Go errors from Send and never panic: every outcome,
// including a nil notification, is a structured notify.Result carrying the
// vendor name and a reason.
//
// SimulatedSMSGateway and SimulatedPushGateway are in-memory gateways for
// development and tests; both can simulate a vendor outage with SetOutage.
//
// # Usage
//
//	emailCh, err := channels.NewEmailChannel(sender)
//	smsCh, err := channels.NewSMSChannel(channels.NewSimulatedSMSGateway())
//
//	router, err := notify.NewRouter([]notify.Channel{smsCh, emailCh})
package channels
