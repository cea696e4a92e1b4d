package syncer

import "time"

// State tracks the outcome history of sync cycles. It is initialized
// to "never attempted" at boot and mutated only by the Reconciler,
// except for ClearFailures, which a manual refresh invokes so the user
// can escape a backed-off retry cadence immediately.
type State struct {
	LastAttempt         time.Time
	LastSuccess         time.Time
	ConsecutiveFailures int
}

// NeverAttempted reports whether no sync cycle has run yet.
func (s State) NeverAttempted() bool {
	return s.LastAttempt.IsZero()
}

// NeverSucceeded reports whether no sync cycle has ever made contact.
func (s State) NeverSucceeded() bool {
	return s.LastSuccess.IsZero()
}

// ClearFailures resets the failure streak. Only a manual refresh calls
// this; the reconciler resets it on its own when a cycle makes contact.
func (s *State) ClearFailures() {
	s.ConsecutiveFailures = 0
}
