// Package circuitbreaker provides a small, concurrency-safe circuit breaker
// for guarding calls to unreliable dependencies such as notification vendors.
//
// The breaker is a three-state machine:
//
//	closed --(failures >= threshold)--> open
//	open --(open timeout elapsed, on next Allow)--> half-open
//	half-open --(success)--> closed
//	half-open --(failure)--> open
//
// It starts closed and cycles indefinitely; Reset forces it closed at any
// time. All transitions happen under a single mutex guarding the state and
// failure counter together, so concurrent callers can never jointly increment
// past the threshold without one of them opening the circuit.
//
// # Usage
//
//	cb := circuitbreaker.New("twilio-sms",
//	    circuitbreaker.WithFailureThreshold(3),
//	    circuitbreaker.WithOpenTimeout(30*time.Second),
//	)
//
//	if !cb.Allow() {
//	    // fail fast, the backend is considered down
//	}
//	err := callBackend()
//	if err != nil {
//	    cb.RecordFailure()
//	} else {
//	    cb.RecordSuccess()
//	}
//
// # Clock injection
//
// The open-timeout expiry check reads time through an injectable clock
// (WithClock), so tests can step time forward instead of sleeping.
//
// # Half-open probes
//
// While half-open, Allow returns true for every caller; the breaker does not
// serialize probes. The first recorded outcome decides the next state: a
// success closes the circuit, a failure reopens it.
package circuitbreaker
