// Package lead models a dealership's sales leads: the aggregate, its
// lifecycle state machine, validated value objects, persistence ports and the
// application service tying them together.
//
// # Architecture
//
// A Lead moves through the funnel NEW → CONTACTED → QUALIFIED → CONVERTED,
// with LOST reachable from any non-terminal state. CONVERTED and LOST are
// terminal. Every transition appends an AuditEntry and bumps UpdatedAt;
// invalid transitions return ErrInvalidTransition. Same-state transitions are
// accepted as no-ops so callers can retry safely.
//
// Value objects validate at construction: Email normalizes to lowercase,
// Phone defaults to the +1 country code and requires ten digits,
// VehicleInterest bounds the model year and rejects negative trade-ins.
//
// Repository is the persistence port. Two implementations ship:
// MemoryRepository for development and tests, and PostgresRepository on a
// pgx pool with the schema under migrations/. Every read requires the dealer
// id, so one dealer can never see another's pipeline. A missing or
// mismatched dealer id is ErrNotFound, not a permission error.
//
// # Usage
//
//	repo := lead.NewMemoryRepository()
//	svc, err := lead.NewService(repo, lead.WithScorer(engine))
//
//	l, err := svc.Create(ctx, lead.CreateParams{
//	    DealerID: "dealer-1",
//	    TenantID: "tenant-1",
//	    SiteID:   "site-1",
//	    Source:   lead.SourceReferral,
//	    Email:    "customer@example.com",
//	})
//
//	l, err = svc.TransitionState(ctx, "dealer-1", l.ID, lead.StateContacted, "agent-7", "first call")
//	l, err = svc.ComputeAndPersistScore(ctx, "dealer-1", l.ID)
//
// # Error Handling
//
// Sentinel errors (ErrNotFound, ErrInvalidTransition, ErrInvalidEmail, ...)
// are wrapped with context and checkable via errors.Is.
package lead
