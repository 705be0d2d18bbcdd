package lead

import "time"

// systemActor is recorded when no explicit actor performs a transition.
const systemActor = "system"

// AuditEntry records a single state transition on a lead.
type AuditEntry struct {
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
	From   State     `json:"from"`
	To     State     `json:"to"`
	Reason string    `json:"reason,omitempty"`
}
