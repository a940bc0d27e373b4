package quiz

// State is the lifecycle stage of a Session.
type State string

// Session states
const (
	// StateNotStarted means no questions have been selected.
	StateNotStarted State = "not_started"
	// StateInProgress means a question is shown and awaits an answer.
	StateInProgress State = "in_progress"
	// StateAwaitingAdvance means the current question was answered and the
	// learner has to advance explicitly.
	StateAwaitingAdvance State = "awaiting_advance"
	// StateComplete means every question was answered; only Reset is permitted.
	StateComplete State = "complete"
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == "" {
		return string(StateNotStarted)
	}
	return string(s)
}
