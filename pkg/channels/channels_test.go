package channels_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/leadkit/pkg/channels"
	"github.com/dealerdesk/leadkit/pkg/email"
	"github.com/dealerdesk/leadkit/pkg/notify"
)

// MockEmailSender is a mock implementation of email.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func TestEmailChannel(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil sender", func(t *testing.T) {
		t.Parallel()

		_, err := channels.NewEmailChannel(nil)
		assert.ErrorIs(t, err, channels.ErrNilSender)
	})

	t.Run("supports email and sms", func(t *testing.T) {
		t.Parallel()

		ch, err := channels.NewEmailChannel(email.NewDevSender(nil))
		require.NoError(t, err)

		assert.True(t, ch.Supports(notify.TypeEmail))
		assert.True(t, ch.Supports(notify.TypeSMS), "email is the fallback transport for texts")
		assert.False(t, ch.Supports(notify.TypePush))
	})

	t.Run("delivers email", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		sender.On("SendEmail", mock.Anything, email.SendEmailParams{
			SendTo:   "customer@example.com",
			Subject:  "Test Drive",
			BodyHTML: "See you Saturday",
			Tag:      "lead-notification",
		}).Return(nil)

		ch, err := channels.NewEmailChannel(sender)
		require.NoError(t, err)

		n, err := notify.NewEmail("dealer-1", "tenant-1", "site-1", "lead-1",
			"Test Drive", "See you Saturday", "customer@example.com")
		require.NoError(t, err)

		result := ch.Send(context.Background(), n)
		require.True(t, result.Success)
		assert.Equal(t, "email-adapter", result.Vendor)
		assert.Contains(t, result.MessageID, "email-")
		sender.AssertExpectations(t)
	})

	t.Run("sms fallback gets a default subject", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.Subject != "" && p.BodyHTML == "Your vehicle is ready"
		})).Return(nil)

		ch, err := channels.NewEmailChannel(sender)
		require.NoError(t, err)

		n, err := notify.NewSMS("dealer-1", "tenant-1", "site-1", "lead-1",
			"Your vehicle is ready", "customer@example.com")
		require.NoError(t, err)

		result := ch.Send(context.Background(), n)
		require.True(t, result.Success)
		sender.AssertExpectations(t)
	})

	t.Run("sender failure becomes a failure result", func(t *testing.T) {
		t.Parallel()

		sender := new(MockEmailSender)
		sender.On("SendEmail", mock.Anything, mock.Anything).Return(email.ErrFailedToSendEmail)

		ch, err := channels.NewEmailChannel(sender)
		require.NoError(t, err)

		n, err := notify.NewEmail("dealer-1", "tenant-1", "site-1", "lead-1",
			"Subject", "Body", "customer@example.com")
		require.NoError(t, err)

		result := ch.Send(context.Background(), n)
		require.False(t, result.Success)
		assert.Equal(t, "email-adapter", result.Vendor)
		assert.NotEmpty(t, result.Err)
	})

	t.Run("nil notification", func(t *testing.T) {
		t.Parallel()

		ch, err := channels.NewEmailChannel(email.NewDevSender(nil))
		require.NoError(t, err)

		result := ch.Send(context.Background(), nil)
		require.False(t, result.Success)
		assert.Contains(t, result.Err, "nil")
	})
}

func TestSMSChannel(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil gateway", func(t *testing.T) {
		t.Parallel()

		_, err := channels.NewSMSChannel(nil)
		assert.ErrorIs(t, err, channels.ErrNilGateway)
	})

	t.Run("supports sms only", func(t *testing.T) {
		t.Parallel()

		ch, err := channels.NewSMSChannel(channels.NewSimulatedSMSGateway())
		require.NoError(t, err)

		assert.True(t, ch.Supports(notify.TypeSMS))
		assert.False(t, ch.Supports(notify.TypeEmail))
		assert.False(t, ch.Supports(notify.TypePush))
	})

	t.Run("delivers through the gateway", func(t *testing.T) {
		t.Parallel()

		gateway := channels.NewSimulatedSMSGateway()
		ch, err := channels.NewSMSChannel(gateway)
		require.NoError(t, err)

		n, err := notify.NewSMS("dealer-1", "tenant-1", "site-1", "lead-1",
			"Your vehicle is ready", "+14155550123")
		require.NoError(t, err)

		result := ch.Send(context.Background(), n)
		require.True(t, result.Success)
		assert.Equal(t, "sms-adapter", result.Vendor)
		assert.Contains(t, result.MessageID, "sms-")

		sent := gateway.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "+14155550123", sent[0].To)
		assert.Equal(t, "Your vehicle is ready", sent[0].Body)
	})

	t.Run("outage becomes a failure result", func(t *testing.T) {
		t.Parallel()

		gateway := channels.NewSimulatedSMSGateway()
		gateway.SetOutage(true)

		ch, err := channels.NewSMSChannel(gateway)
		require.NoError(t, err)

		n, err := notify.NewSMS("dealer-1", "tenant-1", "site-1", "lead-1",
			"Hello", "+14155550123")
		require.NoError(t, err)

		result := ch.Send(context.Background(), n)
		require.False(t, result.Success)
		assert.Equal(t, "sms-adapter", result.Vendor)
		assert.NotEmpty(t, result.Err)
		assert.Empty(t, gateway.Sent())
	})

	t.Run("nil notification", func(t *testing.T) {
		t.Parallel()

		ch, err := channels.NewSMSChannel(channels.NewSimulatedSMSGateway())
		require.NoError(t, err)

		result := ch.Send(context.Background(), nil)
		require.False(t, result.Success)
		assert.Contains(t, result.Err, "nil")
	})
}

func TestPushChannel(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil gateway", func(t *testing.T) {
		t.Parallel()

		_, err := channels.NewPushChannel(nil)
		assert.ErrorIs(t, err, channels.ErrNilGateway)
	})

	t.Run("supports push only", func(t *testing.T) {
		t.Parallel()

		ch, err := channels.NewPushChannel(channels.NewSimulatedPushGateway())
		require.NoError(t, err)

		assert.True(t, ch.Supports(notify.TypePush))
		assert.False(t, ch.Supports(notify.TypeSMS))
		assert.False(t, ch.Supports(notify.TypeEmail))
	})

	t.Run("delivers through the gateway", func(t *testing.T) {
		t.Parallel()

		gateway := channels.NewSimulatedPushGateway()
		ch, err := channels.NewPushChannel(gateway)
		require.NoError(t, err)

		n, err := notify.NewNotification("dealer-1", "tenant-1", "site-1", "lead-1",
			notify.TypePush, "New lead", "A new lead was assigned to you", "device-token-1")
		require.NoError(t, err)

		result := ch.Send(context.Background(), n)
		require.True(t, result.Success)
		assert.Equal(t, "push-adapter", result.Vendor)
		assert.Contains(t, result.MessageID, "push-")
		require.Len(t, gateway.Sent(), 1)
	})

	t.Run("outage becomes a failure result", func(t *testing.T) {
		t.Parallel()

		gateway := channels.NewSimulatedPushGateway()
		gateway.SetOutage(true)

		ch, err := channels.NewPushChannel(gateway)
		require.NoError(t, err)

		n, err := notify.NewNotification("dealer-1", "tenant-1", "site-1", "lead-1",
			notify.TypePush, "New lead", "Body", "device-token-1")
		require.NoError(t, err)

		result := ch.Send(context.Background(), n)
		require.False(t, result.Success)
		assert.Equal(t, "push-adapter", result.Vendor)
	})

	t.Run("nil notification", func(t *testing.T) {
		t.Parallel()

		ch, err := channels.NewPushChannel(channels.NewSimulatedPushGateway())
		require.NoError(t, err)

		result := ch.Send(context.Background(), nil)
		require.False(t, result.Success)
		assert.Contains(t, result.Err, "nil")
	})
}

// End-to-end: router + guarded simulated vendors behaving like a real outage.
func TestChannels_RouterFailover(t *testing.T) {
	t.Parallel()

	smsGateway := channels.NewSimulatedSMSGateway()
	smsGateway.SetOutage(true)
	smsCh, err := channels.NewSMSChannel(smsGateway)
	require.NoError(t, err)

	emailCh, err := channels.NewEmailChannel(email.NewDevSender(nil))
	require.NoError(t, err)

	router, err := notify.NewRouter([]notify.Channel{smsCh, emailCh})
	require.NoError(t, err)

	n, err := notify.NewSMS("dealer-1", "tenant-1", "site-1", "lead-1",
		"Your appointment is confirmed", "customer@example.com")
	require.NoError(t, err)

	result := router.Route(context.Background(), n)
	require.True(t, result.Success)
	assert.Equal(t, "email-adapter", result.Vendor, "sms outage falls back to email")
}

func TestNewSimulatedSMSGatewayFromConfig(t *testing.T) {
	t.Parallel()

	down := channels.NewSimulatedSMSGatewayFromConfig(channels.Config{SMSOutage: true})
	_, err := down.SendSMS(context.Background(), "+14155550123", "hello")
	assert.ErrorIs(t, err, channels.ErrGatewayOutage)

	up := channels.NewSimulatedSMSGatewayFromConfig(channels.Config{})
	id, err := up.SendSMS(context.Background(), "+14155550123", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
