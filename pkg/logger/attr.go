package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// DealerID records the dealer identifier under the key "dealer_id".
// If id is empty, it returns an empty Attr.
func DealerID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("dealer_id", id)
}

// TenantID records the tenant identifier under the key "tenant_id".
// If id is empty, it returns an empty Attr.
func TenantID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("tenant_id", id)
}

// SiteID records the site identifier under the key "site_id".
// If id is empty, it returns an empty Attr.
func SiteID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("site_id", id)
}

// LeadID records the lead identifier under the key "lead_id".
// If id is empty, it returns an empty Attr.
func LeadID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("lead_id", id)
}

// MessageID records the vendor message identifier under the key "message_id".
// If id is nil, it returns an empty Attr.
func MessageID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("message_id", id)
}

// Vendor records the delivery vendor name under the key "vendor".
func Vendor(name string) slog.Attr {
	return slog.String("vendor", name)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// RetryCount records the retry count under the key "retry_count".
func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Score records a lead score under the key "score".
func Score(score float64) slog.Attr {
	return slog.Float64("score", score)
}
