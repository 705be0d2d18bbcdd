package scoring

import "errors"

var ErrNilLead = errors.New("scoring.errors.nil_lead")
