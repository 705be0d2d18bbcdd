package notify

import "errors"

var (
	// ErrInvalidNotification indicates a notification failed construction-time validation.
	ErrInvalidNotification = errors.New("invalid notification")

	// ErrNoChannels indicates a router was constructed with a nil or empty channel list.
	ErrNoChannels = errors.New("channel list cannot be nil or empty")

	// ErrNilDelegate indicates a guarded channel was constructed without a delegate.
	ErrNilDelegate = errors.New("delegate channel cannot be nil")

	// ErrNilBreaker indicates a guarded channel was constructed without a circuit breaker.
	ErrNilBreaker = errors.New("circuit breaker cannot be nil")
)
