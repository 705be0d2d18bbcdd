package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/leadkit/pkg/circuitbreaker"
	"github.com/dealerdesk/leadkit/pkg/notify"
)

// fakeClock is a controllable time source for breaker cooldown tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestNewGuardedChannel(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil delegate", func(t *testing.T) {
		t.Parallel()

		_, err := notify.NewGuardedChannel(nil, circuitbreaker.New("sms"))
		assert.ErrorIs(t, err, notify.ErrNilDelegate)
	})

	t.Run("rejects nil breaker", func(t *testing.T) {
		t.Parallel()

		_, err := notify.NewGuardedChannel(newFakeChannel("sms-adapter", false, notify.TypeSMS), nil)
		assert.ErrorIs(t, err, notify.ErrNilBreaker)
	})
}

func TestGuardedChannel_Supports(t *testing.T) {
	t.Parallel()

	guarded, err := notify.NewGuardedChannel(
		newFakeChannel("sms-adapter", false, notify.TypeSMS),
		circuitbreaker.New("sms"),
	)
	require.NoError(t, err)

	assert.True(t, guarded.Supports(notify.TypeSMS))
	assert.False(t, guarded.Supports(notify.TypeEmail))

	// Capability checks stay truthful even while the breaker is open.
	for i := 0; i < circuitbreaker.DefaultFailureThreshold; i++ {
		guarded.Send(context.Background(), smsNotification(t, "dealer-1", "lead-1"))
	}
	assert.True(t, guarded.Supports(notify.TypeSMS))
}

func TestGuardedChannel_Send(t *testing.T) {
	t.Parallel()

	t.Run("passes through delegate outcome", func(t *testing.T) {
		t.Parallel()

		ch := newFakeChannel("sms-adapter", false, notify.TypeSMS)
		guarded, err := notify.NewGuardedChannel(ch, circuitbreaker.New("sms"))
		require.NoError(t, err)

		result := guarded.Send(context.Background(), smsNotification(t, "dealer-1", "lead-1"))
		require.True(t, result.Success)
		assert.Equal(t, "sms-adapter", result.Vendor)
		assert.Equal(t, int64(1), ch.sendCalls.Load())
	})

	t.Run("records failures until the breaker opens", func(t *testing.T) {
		t.Parallel()

		ch := newFakeChannel("sms-adapter", true, notify.TypeSMS)
		guarded, err := notify.NewGuardedChannel(ch, circuitbreaker.New("sms"))
		require.NoError(t, err)

		n := smsNotification(t, "dealer-1", "lead-1")
		for i := 0; i < circuitbreaker.DefaultFailureThreshold; i++ {
			result := guarded.Send(context.Background(), n)
			require.False(t, result.Success)
			assert.Equal(t, "sms-adapter", result.Vendor, "pre-open failures come from the delegate")
		}
		assert.Equal(t, circuitbreaker.StateOpen, guarded.BreakerState())
	})

	t.Run("open breaker short-circuits without touching the delegate", func(t *testing.T) {
		t.Parallel()

		ch := newFakeChannel("sms-adapter", true, notify.TypeSMS)
		guarded, err := notify.NewGuardedChannel(ch, circuitbreaker.New("twilio"))
		require.NoError(t, err)

		n := smsNotification(t, "dealer-1", "lead-1")
		for i := 0; i < circuitbreaker.DefaultFailureThreshold; i++ {
			guarded.Send(context.Background(), n)
		}
		callsAtOpen := ch.sendCalls.Load()

		result := guarded.Send(context.Background(), n)
		require.False(t, result.Success)
		assert.Equal(t, "twilio-circuit-breaker", result.Vendor)
		assert.Contains(t, result.Err, "circuit open")
		assert.Equal(t, callsAtOpen, ch.sendCalls.Load(), "open breaker must not invoke the delegate")
	})

	t.Run("half-open probe success closes the breaker", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		breaker := circuitbreaker.New("sms", circuitbreaker.WithClock(clock.Now))

		ch := newFakeChannel("sms-adapter", true, notify.TypeSMS)
		guarded, err := notify.NewGuardedChannel(ch, breaker)
		require.NoError(t, err)

		n := smsNotification(t, "dealer-1", "lead-1")
		for i := 0; i < circuitbreaker.DefaultFailureThreshold; i++ {
			guarded.Send(context.Background(), n)
		}
		require.Equal(t, circuitbreaker.StateOpen, guarded.BreakerState())

		clock.Advance(circuitbreaker.DefaultOpenTimeout)
		ch.fail = false

		result := guarded.Send(context.Background(), n)
		require.True(t, result.Success)
		assert.Equal(t, circuitbreaker.StateClosed, guarded.BreakerState())
	})

	t.Run("half-open probe failure reopens the breaker", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		breaker := circuitbreaker.New("sms", circuitbreaker.WithClock(clock.Now))

		ch := newFakeChannel("sms-adapter", true, notify.TypeSMS)
		guarded, err := notify.NewGuardedChannel(ch, breaker)
		require.NoError(t, err)

		n := smsNotification(t, "dealer-1", "lead-1")
		for i := 0; i < circuitbreaker.DefaultFailureThreshold; i++ {
			guarded.Send(context.Background(), n)
		}
		clock.Advance(circuitbreaker.DefaultOpenTimeout)

		result := guarded.Send(context.Background(), n)
		require.False(t, result.Success)
		assert.Equal(t, "sms-adapter", result.Vendor, "the probe reached the delegate")
		assert.Equal(t, circuitbreaker.StateOpen, guarded.BreakerState())
	})
}

func TestGuardedChannel_RouterIntegration(t *testing.T) {
	t.Parallel()

	// An open SMS breaker should make the router fail over to email without
	// the broken vendor ever being called.
	sms := newFakeChannel("sms-adapter", true, notify.TypeSMS)
	guardedSMS, err := notify.NewGuardedChannel(sms, circuitbreaker.New("sms"))
	require.NoError(t, err)

	email := newFakeChannel("email-adapter", false, notify.TypeSMS, notify.TypeEmail)
	router, err := notify.NewRouter([]notify.Channel{guardedSMS, email})
	require.NoError(t, err)

	for i := 0; i < circuitbreaker.DefaultFailureThreshold; i++ {
		result := router.Route(context.Background(), smsNotification(t, "dealer-1", "lead-"+string(rune('a'+i))))
		require.True(t, result.Success)
		assert.Equal(t, "email-adapter", result.Vendor)
	}
	require.Equal(t, circuitbreaker.StateOpen, guardedSMS.BreakerState())
	callsAtOpen := sms.sendCalls.Load()

	result := router.Route(context.Background(), smsNotification(t, "dealer-1", "lead-z"))
	require.True(t, result.Success)
	assert.Equal(t, "email-adapter", result.Vendor)
	assert.Equal(t, callsAtOpen, sms.sendCalls.Load())
}
