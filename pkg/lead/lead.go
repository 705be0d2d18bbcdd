package lead

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxScore caps a lead's score; UpdateScore clamps into [0, maxScore].
const maxScore = 100.0

// Lead is the sales-lead aggregate. A lead belongs to exactly one dealer and
// every read path requires the dealer id, so tenants can never see each
// other's pipeline.
type Lead struct {
	ID       string
	DealerID string
	TenantID string
	SiteID   string

	Source  Source
	Email   Email
	Phone   Phone
	Vehicle *VehicleInterest

	State State
	Score *float64

	CreatedAt time.Time
	UpdatedAt time.Time
	Audit     []AuditEntry
}

// NewLead creates a lead in state NEW with a generated id.
func NewLead(dealerID, tenantID, siteID string, source Source, email Email, phone Phone, vehicle *VehicleInterest) (*Lead, error) {
	dealerID = strings.TrimSpace(dealerID)
	tenantID = strings.TrimSpace(tenantID)
	siteID = strings.TrimSpace(siteID)

	if dealerID == "" {
		return nil, fmt.Errorf("%w: dealer id is required", ErrInvalidLead)
	}
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", ErrInvalidLead)
	}
	if siteID == "" {
		return nil, fmt.Errorf("%w: site id is required", ErrInvalidLead)
	}
	if !source.Valid() {
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidLead, source)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidLead)
	}

	now := time.Now().UTC()
	return &Lead{
		ID:        uuid.NewString(),
		DealerID:  dealerID,
		TenantID:  tenantID,
		SiteID:    siteID,
		Source:    source,
		Email:     email,
		Phone:     phone,
		Vehicle:   vehicle,
		State:     StateNew,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// TransitionTo moves the lead to target, appending an audit entry and bumping
// UpdatedAt. Same-state transitions are no-ops. An empty actor is recorded as
// "system". Invalid moves, including any move out of a terminal state, return
// ErrInvalidTransition.
func (l *Lead) TransitionTo(target State, actor, reason string) error {
	if !target.Valid() {
		return fmt.Errorf("%w: unknown state %q", ErrInvalidTransition, target)
	}
	if l.State == target {
		return nil
	}
	if !l.State.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.State, target)
	}

	if actor == "" {
		actor = systemActor
	}

	now := time.Now().UTC()
	l.Audit = append(l.Audit, AuditEntry{
		At:     now,
		Actor:  actor,
		From:   l.State,
		To:     target,
		Reason: reason,
	})
	l.State = target
	l.UpdatedAt = now

	return nil
}

// UpdateScore sets the lead's score, clamped into [0, 100], and bumps
// UpdatedAt.
func (l *Lead) UpdateScore(score float64) {
	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	l.Score = &score
	l.UpdatedAt = time.Now().UTC()
}

// Scored reports whether the lead has been scored at least once.
func (l *Lead) Scored() bool {
	return l.Score != nil
}
