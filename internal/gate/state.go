package gate

// State is the lifecycle position of a [Handle].
type State int

const (
	// AwaitingInput waits for the user to submit or cancel.
	AwaitingInput State = iota

	// Authenticating checks a submitted candidate and, on a match, builds
	// the reply.
	Authenticating

	// Succeeded is terminal: the reply carries a payload.
	Succeeded

	// Cancelled is terminal: the reply is a failure.
	Cancelled
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case Authenticating:
		return "authenticating"
	case Succeeded:
		return "succeeded"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is Succeeded or Cancelled.
func (s State) Terminal() bool {
	return s == Succeeded || s == Cancelled
}

// Step tells the prompt what to do after an input event.
type Step int

const (
	// Retry keeps the prompt open for another attempt.
	Retry Step = iota + 1

	// Terminal closes the prompt; the reply is available from Result.
	Terminal
)

func (s Step) String() string {
	switch s {
	case Retry:
		return "retry"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}
