package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/leadkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDealerID(t *testing.T) {
	attr := logger.DealerID("dealer-1")
	require.Equal(t, "dealer_id", attr.Key)
	assert.Equal(t, "dealer-1", attr.Value.String())

	empty := logger.DealerID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestLeadID(t *testing.T) {
	attr := logger.LeadID("lead-42")
	require.Equal(t, "lead_id", attr.Key)
	assert.Equal(t, "lead-42", attr.Value.String())

	empty := logger.LeadID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestTenantID(t *testing.T) {
	attr := logger.TenantID("tenant-1")
	require.Equal(t, "tenant_id", attr.Key)
	assert.Equal(t, "tenant-1", attr.Value.String())
}

func TestSiteID(t *testing.T) {
	attr := logger.SiteID("site-1")
	require.Equal(t, "site_id", attr.Key)
	assert.Equal(t, "site-1", attr.Value.String())
}

func TestVendor(t *testing.T) {
	attr := logger.Vendor("sms-adapter")
	require.Equal(t, "vendor", attr.Key)
	assert.Equal(t, "sms-adapter", attr.Value.String())
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
}

func TestScore(t *testing.T) {
	attr := logger.Score(87.5)
	require.Equal(t, "score", attr.Key)
	assert.InDelta(t, 87.5, attr.Value.Float64(), 0.001)
}
