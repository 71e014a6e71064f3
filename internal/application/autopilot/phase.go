package autopilot

import "fmt"

// Phase is what the pilot is currently doing
type Phase string

const (
	// PhaseProspecting mines the nearest asteroid with the tractor running
	PhaseProspecting Phase = "PROSPECTING"
	// PhaseHauling flies a full hold to the nearest refinery
	PhaseHauling Phase = "HAULING"
	// PhaseTrading flies refined goods to the best-paying trade station
	PhaseTrading Phase = "TRADING"
)

var transitions = map[Phase][]Phase{
	PhaseProspecting: {PhaseHauling},
	PhaseHauling:     {PhaseProspecting, PhaseTrading},
	PhaseTrading:     {PhaseProspecting},
}

// CanTransitionTo reports whether next is a legal successor of p
func (p Phase) CanTransitionTo(next Phase) bool {
	for _, allowed := range transitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PhaseError is an illegal phase change
type PhaseError struct {
	From, To Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("autopilot cannot go from %s to %s", e.From, e.To)
}
