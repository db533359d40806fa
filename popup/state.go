package popup

// AttemptState tracks one authorization attempt through its lifecycle.
type AttemptState string

const (
	// StateIdle means no attempt is in progress.
	StateIdle AttemptState = "Idle"

	// StateWindowOpening means the authorization window is being opened.
	StateWindowOpening AttemptState = "WindowOpening"

	// StateAwaitingResult means the window is open and the attempt is
	// waiting for a terminal bridge message or a window close.
	StateAwaitingResult AttemptState = "AwaitingResult"

	// StateResolved means an auth-success message was accepted.
	StateResolved AttemptState = "Resolved"

	// StateRejected means the attempt failed (blocked window or an
	// auth-error message).
	StateRejected AttemptState = "Rejected"

	// StateCancelled means the user closed the window, or the caller's
	// context ended, before a terminal message arrived.
	StateCancelled AttemptState = "Cancelled"
)

// String returns the string representation of the state.
func (s AttemptState) String() string {
	return string(s)
}

// IsTerminal reports whether the attempt has finished. There are no
// transitions out of a terminal state.
func (s AttemptState) IsTerminal() bool {
	return s == StateResolved || s == StateRejected || s == StateCancelled
}

var transitions = map[AttemptState][]AttemptState{
	StateIdle:           {StateWindowOpening},
	StateWindowOpening:  {StateAwaitingResult, StateRejected, StateCancelled},
	StateAwaitingResult: {StateResolved, StateRejected, StateCancelled},
}

// CanTransition reports whether moving from s to next is legal.
func (s AttemptState) CanTransition(next AttemptState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// attempt holds the state of one BeginAuthorization call.
type attempt struct {
	state AttemptState
}

func newAttempt() *attempt {
	return &attempt{state: StateIdle}
}

// to advances the attempt. Illegal transitions, including any move out
// of a terminal state, are ignored so that the loser of the
// message-vs-window-closed race cannot overwrite the outcome.
func (a *attempt) to(next AttemptState) {
	if !a.state.CanTransition(next) {
		return
	}
	a.state = next
}
