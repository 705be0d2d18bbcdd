package lead

// State is a lead's position in the sales funnel.
type State string

const (
	StateNew       State = "NEW"
	StateContacted State = "CONTACTED"
	StateQualified State = "QUALIFIED"
	StateConverted State = "CONVERTED"
	StateLost      State = "LOST"
)

// transitions is the forward edge set of the funnel. A state may always
// transition to itself (idempotent re-application) and any non-terminal state
// may be marked LOST.
var transitions = map[State][]State{
	StateNew:       {StateContacted, StateLost},
	StateContacted: {StateQualified, StateLost},
	StateQualified: {StateConverted, StateLost},
	StateConverted: {},
	StateLost:      {},
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether the state ends the lifecycle. Terminal states
// accept no transitions other than to themselves.
func (s State) Terminal() bool {
	return s == StateConverted || s == StateLost
}

// CanTransitionTo reports whether the funnel allows moving from s to target.
// Same-state transitions are always allowed.
func (s State) CanTransitionTo(target State) bool {
	if s == target {
		return true
	}
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s State) String() string {
	return string(s)
}
