package email

import (
	"context"
	"log/slog"
	"sync"
)

// DevSender implements EmailSender for local development. Instead of calling
// a provider it logs every email and keeps an in-memory record, so local
// tooling and tests can inspect what would have been sent.
type DevSender struct {
	log *slog.Logger

	mu   sync.Mutex
	sent []SendEmailParams
}

// NewDevSender creates a development email sender. A nil logger falls back to
// slog.Default().
func NewDevSender(log *slog.Logger) *DevSender {
	if log == nil {
		log = slog.Default()
	}
	return &DevSender{log: log}
}

// SendEmail validates the params, records them, and logs a summary. The HTML
// body is never logged, only its size.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	d.sent = append(d.sent, params)
	d.mu.Unlock()

	d.log.InfoContext(ctx, "dev email captured",
		slog.String("send_to", params.SendTo),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
		slog.Int("body_bytes", len(params.BodyHTML)),
	)

	return nil
}

// Sent returns a copy of all emails captured so far.
func (d *DevSender) Sent() []SendEmailParams {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]SendEmailParams, len(d.sent))
	copy(out, d.sent)
	return out
}

// Reset discards all captured emails.
func (d *DevSender) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = nil
}
