package lead

import (
	"fmt"
	"strings"
	"unicode"
)

// defaultCountryCode applies when the caller leaves the country code blank.
const defaultCountryCode = "+1"

// minPhoneDigits is the shortest national number accepted.
const minPhoneDigits = 10

// Phone is a validated customer phone number split into country code and
// national number.
type Phone struct {
	CountryCode string
	Number      string
}

// NewPhone normalizes and validates a phone number. An empty country code
// defaults to "+1"; a provided one must start with '+'. The number is
// stripped to digits and must carry at least ten of them.
func NewPhone(countryCode, number string) (Phone, error) {
	countryCode = strings.TrimSpace(countryCode)
	if countryCode == "" {
		countryCode = defaultCountryCode
	}
	if !strings.HasPrefix(countryCode, "+") {
		return Phone{}, fmt.Errorf("%w: country code must start with '+'", ErrInvalidPhone)
	}

	digits := strings.Builder{}
	for _, r := range number {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() < minPhoneDigits {
		return Phone{}, fmt.Errorf("%w: number must contain at least %d digits", ErrInvalidPhone, minPhoneDigits)
	}

	return Phone{CountryCode: countryCode, Number: digits.String()}, nil
}

// String returns the number in E.164-ish form.
func (p Phone) String() string {
	return p.CountryCode + p.Number
}
