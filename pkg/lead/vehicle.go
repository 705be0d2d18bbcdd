package lead

import (
	"fmt"
	"strings"
	"time"
)

// earliestModelYear bounds vehicle years from below; anything older is a
// data-entry error, not a trade-in.
const earliestModelYear = 1900

// VehicleInterest captures the vehicle a lead is shopping for, plus an
// optional trade-in valuation.
type VehicleInterest struct {
	Make         string
	Model        string
	Year         int
	TradeInValue *float64
}

// NewVehicleInterest validates make, model and year. tradeIn is optional;
// when present it must be non-negative.
func NewVehicleInterest(make, model string, year int, tradeIn *float64) (VehicleInterest, error) {
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)
	if make == "" {
		return VehicleInterest{}, fmt.Errorf("%w: make is required", ErrInvalidVehicle)
	}
	if model == "" {
		return VehicleInterest{}, fmt.Errorf("%w: model is required", ErrInvalidVehicle)
	}
	maxYear := time.Now().Year() + 1
	if year < earliestModelYear || year > maxYear {
		return VehicleInterest{}, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidVehicle, earliestModelYear, maxYear)
	}
	if tradeIn != nil && *tradeIn < 0 {
		return VehicleInterest{}, fmt.Errorf("%w: trade-in value cannot be negative", ErrInvalidVehicle)
	}

	v := VehicleInterest{Make: make, Model: model, Year: year}
	if tradeIn != nil {
		value := *tradeIn
		v.TradeInValue = &value
	}
	return v, nil
}

// Age returns the vehicle's age in years as of now. Next-year models
// report zero.
func (v VehicleInterest) Age(now time.Time) int {
	age := now.Year() - v.Year
	if age < 0 {
		return 0
	}
	return age
}
