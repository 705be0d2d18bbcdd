package notify

import (
	"fmt"
	"strings"
)

// ChannelType identifies a notification delivery channel.
type ChannelType string

const (
	// TypeEmail delivers to an email address; Subject is used as the subject line.
	TypeEmail ChannelType = "EMAIL"
	// TypeSMS delivers to an E.164 phone number; Subject is ignored.
	TypeSMS ChannelType = "SMS"
	// TypePush delivers to a device push token; Subject is used as the title.
	TypePush ChannelType = "PUSH"
)

// Valid reports whether the channel type is one of the known values.
func (t ChannelType) Valid() bool {
	switch t {
	case TypeEmail, TypeSMS, TypePush:
		return true
	}
	return false
}

// Notification is an immutable request to deliver one message to one
// recipient. Every notification carries full tenant context (dealer, tenant,
// site) so the router can isolate rate limits between dealers, and a LeadID
// that scopes the per-recipient daily limit.
//
// Construct through NewNotification or the NewSMS/NewEmail helpers so the
// field invariants hold; a zero Notification is not valid.
type Notification struct {
	// DealerID is the dealership sending this notification.
	DealerID string
	// TenantID is the parent tenant/organization.
	TenantID string
	// SiteID is the site/location within the dealership.
	SiteID string
	// LeadID identifies the recipient lead; rate limits key on dealer+lead.
	LeadID string
	// Type selects which channels may carry the message.
	Type ChannelType
	// Subject is optional and mainly used for EMAIL.
	Subject string
	// Body is the message content.
	Body string
	// To is the recipient address: email address, E.164 phone, or push token
	// depending on Type.
	To string
}

// NewNotification builds a validated notification. All identifier fields,
// body and destination must be non-blank after trimming; subject may be
// empty. Returns ErrInvalidNotification wrapped with the offending field.
func NewNotification(dealerID, tenantID, siteID, leadID string, typ ChannelType, subject, body, to string) (*Notification, error) {
	n := &Notification{
		DealerID: strings.TrimSpace(dealerID),
		TenantID: strings.TrimSpace(tenantID),
		SiteID:   strings.TrimSpace(siteID),
		LeadID:   strings.TrimSpace(leadID),
		Type:     typ,
		Subject:  strings.TrimSpace(subject),
		Body:     strings.TrimSpace(body),
		To:       strings.TrimSpace(to),
	}

	switch {
	case n.DealerID == "":
		return nil, fmt.Errorf("%w: dealer id cannot be blank", ErrInvalidNotification)
	case n.TenantID == "":
		return nil, fmt.Errorf("%w: tenant id cannot be blank", ErrInvalidNotification)
	case n.SiteID == "":
		return nil, fmt.Errorf("%w: site id cannot be blank", ErrInvalidNotification)
	case n.LeadID == "":
		return nil, fmt.Errorf("%w: lead id cannot be blank", ErrInvalidNotification)
	case !n.Type.Valid():
		return nil, fmt.Errorf("%w: unknown channel type %q", ErrInvalidNotification, typ)
	case n.Body == "":
		return nil, fmt.Errorf("%w: body cannot be blank", ErrInvalidNotification)
	case n.To == "":
		return nil, fmt.Errorf("%w: destination cannot be blank", ErrInvalidNotification)
	}

	return n, nil
}

// NewSMS builds an SMS notification; phoneE164 must be the recipient phone in
// E.164 format.
func NewSMS(dealerID, tenantID, siteID, leadID, body, phoneE164 string) (*Notification, error) {
	return NewNotification(dealerID, tenantID, siteID, leadID, TypeSMS, "", body, phoneE164)
}

// NewEmail builds an email notification.
func NewEmail(dealerID, tenantID, siteID, leadID, subject, body, emailAddr string) (*Notification, error) {
	return NewNotification(dealerID, tenantID, siteID, leadID, TypeEmail, subject, body, emailAddr)
}
