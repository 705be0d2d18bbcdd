package scoring

import (
	"time"

	"github.com/dealerdesk/leadkit/pkg/lead"
)

// Rule evaluates one facet of a lead and returns a value in [0, 1]. The
// engine clamps out-of-range values, so a sloppy rule cannot skew a score.
type Rule interface {
	Name() string
	Weight() float64
	Evaluate(l *lead.Lead) float64
}

// Default rule weights. They sum to 100 but do not have to: the engine
// normalizes by total weight.
const (
	sourceQualityWeight = 20
	vehicleAgeWeight    = 25
	tradeInWeight       = 25
	engagementWeight    = 15
	recencyWeight       = 15
)

// DefaultRules returns the standard five-rule set. now supplies the time
// source for the recency rule; nil falls back to time.Now.
func DefaultRules(now func() time.Time) []Rule {
	if now == nil {
		now = time.Now
	}
	return []Rule{
		sourceQualityRule{},
		vehicleAgeRule{now: now},
		tradeInRule{},
		engagementRule{},
		recencyRule{now: now},
	}
}

// sourceQualityRule rewards lead channels by how often they close: referrals
// convert far better than walk-ins.
type sourceQualityRule struct{}

func (sourceQualityRule) Name() string    { return "source_quality" }
func (sourceQualityRule) Weight() float64 { return sourceQualityWeight }

func (sourceQualityRule) Evaluate(l *lead.Lead) float64 {
	switch l.Source {
	case lead.SourceReferral:
		return 1.0
	case lead.SourceWebsite:
		return 0.7
	case lead.SourcePhone:
		return 0.5
	default:
		return 0.3
	}
}

// vehicleAgeRule rewards older current vehicles: a customer driving a
// ten-year-old car is closer to buying than one in a two-year-old lease.
type vehicleAgeRule struct {
	now func() time.Time
}

func (vehicleAgeRule) Name() string    { return "vehicle_age" }
func (vehicleAgeRule) Weight() float64 { return vehicleAgeWeight }

func (r vehicleAgeRule) Evaluate(l *lead.Lead) float64 {
	if l.Vehicle == nil {
		return 0.2
	}
	age := l.Vehicle.Age(r.now())
	switch {
	case age >= 5:
		return 1.0
	case age >= 3:
		return 0.6
	default:
		return 0.2
	}
}

// tradeInRule rewards equity walking in the door.
type tradeInRule struct{}

func (tradeInRule) Name() string    { return "trade_in_value" }
func (tradeInRule) Weight() float64 { return tradeInWeight }

func (tradeInRule) Evaluate(l *lead.Lead) float64 {
	if l.Vehicle == nil || l.Vehicle.TradeInValue == nil {
		return 0.1
	}
	value := *l.Vehicle.TradeInValue
	switch {
	case value > 10000:
		return 1.0
	case value > 5000:
		return 0.7
	case value > 0:
		return 0.4
	default:
		return 0.1
	}
}

// engagementRule tracks funnel progress.
type engagementRule struct{}

func (engagementRule) Name() string    { return "engagement" }
func (engagementRule) Weight() float64 { return engagementWeight }

func (engagementRule) Evaluate(l *lead.Lead) float64 {
	switch l.State {
	case lead.StateQualified, lead.StateConverted:
		return 1.0
	case lead.StateContacted:
		return 0.6
	case lead.StateLost:
		return 0.1
	default:
		return 0.2
	}
}

// recencyRule rewards fresh leads; intent decays fast in auto retail.
type recencyRule struct {
	now func() time.Time
}

func (recencyRule) Name() string    { return "recency" }
func (recencyRule) Weight() float64 { return recencyWeight }

func (r recencyRule) Evaluate(l *lead.Lead) float64 {
	age := r.now().Sub(l.CreatedAt)
	switch {
	case age < 24*time.Hour:
		return 1.0
	case age < 7*24*time.Hour:
		return 0.7
	case age < 30*24*time.Hour:
		return 0.4
	default:
		return 0.1
	}
}
