package circuitbreaker

import (
	"sync"
	"time"
)

// State represents the current state of the circuit breaker.
type State int

const (
	// StateClosed allows requests to pass through.
	StateClosed State = iota
	// StateOpen blocks all requests until the open timeout elapses.
	StateOpen
	// StateHalfOpen allows probe requests to test if the backend has recovered.
	StateHalfOpen
)

// String returns the string representation of the circuit state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

const (
	// DefaultFailureThreshold is the number of consecutive failures that opens the circuit.
	DefaultFailureThreshold = 3
	// DefaultOpenTimeout is how long the circuit stays open before allowing a probe.
	DefaultOpenTimeout = 30 * time.Second
)

// CircuitBreaker implements the circuit breaker pattern for a single backing
// dependency. One breaker guards one dependency; share instances accordingly.
// Safe for concurrent use.
//
// Note: half-open does not limit the number of concurrent probes. Several
// callers may pass Allow before the first probe outcome is recorded.
type CircuitBreaker struct {
	mu sync.RWMutex

	name             string
	failureThreshold int
	openTimeout      time.Duration
	now              func() time.Time

	state           State
	failures        int
	lastFailureTime time.Time
}

// Option configures a CircuitBreaker during construction.
type Option func(*CircuitBreaker)

// WithFailureThreshold sets the number of consecutive failures that opens the
// circuit. Non-positive values fall back to the default.
func WithFailureThreshold(n int) Option {
	return func(cb *CircuitBreaker) {
		if n > 0 {
			cb.failureThreshold = n
		}
	}
}

// WithOpenTimeout sets how long the circuit stays open before a probe is
// allowed. Non-positive values fall back to the default.
func WithOpenTimeout(d time.Duration) Option {
	return func(cb *CircuitBreaker) {
		if d > 0 {
			cb.openTimeout = d
		}
	}
}

// WithClock injects a time source, enabling deterministic timeout expiry in
// tests. Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(cb *CircuitBreaker) {
		if now != nil {
			cb.now = now
		}
	}
}

// New creates a circuit breaker with the given name and options.
// The name identifies the breaker in diagnostics and synthetic failure results.
func New(name string, opts ...Option) *CircuitBreaker {
	cb := &CircuitBreaker{
		name:             name,
		failureThreshold: DefaultFailureThreshold,
		openTimeout:      DefaultOpenTimeout,
		now:              time.Now,
		state:            StateClosed,
	}

	for _, opt := range opts {
		opt(cb)
	}

	return cb
}

// Name returns the breaker's diagnostic name.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// Allow checks whether a request may proceed. In the open state it transitions
// to half-open once the open timeout has elapsed since the last failure, and
// the triggering caller is allowed through as the probe.
// Uses a write lock since it may transition state.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true

	case StateOpen:
		if cb.now().Sub(cb.lastFailureTime) >= cb.openTimeout {
			cb.state = StateHalfOpen
			return true
		}
		return false

	case StateHalfOpen:
		return true

	default:
		return false
	}
}

// RecordSuccess records a successful call. A success while half-open closes
// the circuit; a success while closed resets the failure counter. Successes
// are not recorded while open, since no call was permitted.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0

	case StateHalfOpen:
		cb.state = StateClosed
		cb.failures = 0
	}
}

// RecordFailure records a failed call. A failure while half-open immediately
// reopens the circuit; a failure while closed increments the counter and opens
// the circuit once the threshold is reached. Failures while open are no-ops,
// the timestamp is already current from the failure that opened the circuit.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.failureThreshold {
			cb.state = StateOpen
			cb.lastFailureTime = cb.now()
		}

	case StateHalfOpen:
		cb.state = StateOpen
		cb.lastFailureTime = cb.now()
	}
}

// State returns the current state without triggering transitions.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// Failures returns the current consecutive-failure count.
func (cb *CircuitBreaker) Failures() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}

// Reset forces the circuit closed and zeroes the failure counter.
// Intended for explicit operator action after a backend is known healthy.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.state = StateClosed
	cb.failures = 0
	cb.lastFailureTime = time.Time{}
}

// Stats provides visibility into circuit breaker state for monitoring.
type Stats struct {
	Name            string
	State           string
	Failures        int
	LastFailureTime time.Time
}

// Stats returns a snapshot of the breaker's current statistics.
func (cb *CircuitBreaker) Stats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:            cb.name,
		State:           cb.state.String(),
		Failures:        cb.failures,
		LastFailureTime: cb.lastFailureTime,
	}
}
