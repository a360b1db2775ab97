package stepwise

// SessionID identifies one submitted query. IDs increase monotonically per
// Controller; zero never identifies a session.
type SessionID uint64

// Event is a sealed interface representing something a session reports to
// its consumer. Every event carries the session it belongs to.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
	SessionID() SessionID
}

// EventMessage carries one step of agent progress.
type EventMessage struct {
	Session SessionID
	Message StepMessage
}

func (EventMessage) event() {}

// SessionID returns the session the step belongs to.
func (e EventMessage) SessionID() SessionID { return e.Session }

// EventCompleted signals that the server reported successful completion.
// It is delivered at most once per session and never after EventFailed.
type EventCompleted struct {
	Session SessionID
}

func (EventCompleted) event() {}

// SessionID returns the completed session.
func (e EventCompleted) SessionID() SessionID { return e.Session }

// EventFailed signals that a session ended with an error sentinel or a
// transport failure. Err is the same value exposed through State.
type EventFailed struct {
	Session SessionID
	Err     error
}

func (EventFailed) event() {}

// SessionID returns the failed session.
func (e EventFailed) SessionID() SessionID { return e.Session }

// Interface compliance checks.
var (
	_ Event = EventMessage{}
	_ Event = EventCompleted{}
	_ Event = EventFailed{}
)
