package lead

import (
	"fmt"
	"regexp"
	"strings"
)

var leadEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated, normalized customer email address.
type Email string

// NewEmail trims and lowercases the raw address and validates its shape.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", fmt.Errorf("%w: address is required", ErrInvalidEmail)
	}
	if !leadEmailRegex.MatchString(normalized) {
		return "", fmt.Errorf("%w: %q is not a valid address", ErrInvalidEmail, raw)
	}
	return Email(normalized), nil
}

func (e Email) String() string {
	return string(e)
}
