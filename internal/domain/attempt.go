package domain

import "fmt"

// AttemptState is the state of a single booking attempt inside the engine.
type AttemptState string

const (
	AttemptDraft      AttemptState = "draft"
	AttemptValidating AttemptState = "validating"
	AttemptReserved   AttemptState = "reserved"
	AttemptConfirmed  AttemptState = "confirmed"
	AttemptRolledBack AttemptState = "rolled_back"
	AttemptRejected   AttemptState = "rejected"
)

var attemptTransitions = map[AttemptState][]AttemptState{
	AttemptDraft:      {AttemptValidating},
	AttemptValidating: {AttemptReserved, AttemptRejected},
	AttemptReserved:   {AttemptConfirmed, AttemptRolledBack},
}

func (s AttemptState) Terminal() bool {
	_, ok := attemptTransitions[s]
	return !ok
}

func (s AttemptState) CanTransition(to AttemptState) bool {
	for _, next := range attemptTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Attempt tracks one booking attempt from draft to a terminal state.
type Attempt struct {
	Service ServiceType
	State   AttemptState
	History []AttemptState
	Reason  error
}

func NewAttempt(service ServiceType) *Attempt {
	return &Attempt{
		Service: service,
		State:   AttemptDraft,
		History: []AttemptState{AttemptDraft},
	}
}

func (a *Attempt) Transition(to AttemptState) error {
	if !a.State.CanTransition(to) {
		return fmt.Errorf("illegal attempt transition %s -> %s", a.State, to)
	}
	a.State = to
	a.History = append(a.History, to)
	return nil
}

// Fail moves the attempt to its failure state for the current stage and keeps
// the reason.
func (a *Attempt) Fail(reason error) error {
	a.Reason = reason
	switch a.State {
	case AttemptValidating:
		return a.Transition(AttemptRejected)
	case AttemptReserved:
		return a.Transition(AttemptRolledBack)
	}
	return fmt.Errorf("attempt in state %s cannot fail", a.State)
}
