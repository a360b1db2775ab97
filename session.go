package stepwise

// Status is the lifecycle state of one session.
type Status int

const (
	StatusIdle       Status = iota // Created, not yet started.
	StatusActive                   // Streaming; the only state that emits events.
	StatusCompleted                // Completion sentinel received.
	StatusFailed                   // Error sentinel or transport failure.
	StatusSuperseded               // Cancelled by a newer Submit or by Cancel.
)

// String returns a lower-case name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// Terminal reports whether s has no outgoing transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusSuperseded
}

// State is the observable state of a Controller. Busy is true from Submit
// until the current session terminates. Err is nil when absent; once set it
// persists until the next Submit.
type State struct {
	Busy   bool
	Err    error
	Status Status    // status of the current session
	ID     SessionID // current session, zero before the first Submit
}
