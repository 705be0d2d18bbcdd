package lead

import "errors"

var (
	ErrNotFound          = errors.New("lead.errors.not_found")
	ErrInvalidLead       = errors.New("lead.errors.invalid_lead")
	ErrInvalidEmail      = errors.New("lead.errors.invalid_email")
	ErrInvalidPhone      = errors.New("lead.errors.invalid_phone")
	ErrInvalidVehicle    = errors.New("lead.errors.invalid_vehicle")
	ErrInvalidTransition = errors.New("lead.errors.invalid_transition")
	ErrNilRepository     = errors.New("lead.errors.nil_repository")
	ErrNilScorer         = errors.New("lead.errors.nil_scorer")
)
