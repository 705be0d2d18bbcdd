package channels

// Config holds channel adapter configuration sourced from the environment.
type Config struct {
	SMSOutage bool `env:"SMS_SIMULATE_OUTAGE" envDefault:"false"` // SMSOutage starts the simulated SMS gateway in outage mode.
}

// NewSimulatedSMSGatewayFromConfig creates a simulated SMS gateway with the
// configured outage state already applied.
func NewSimulatedSMSGatewayFromConfig(cfg Config) *SimulatedSMSGateway {
	g := NewSimulatedSMSGateway()
	g.SetOutage(cfg.SMSOutage)
	return g
}
