package stepwise

// StepKind identifies one of the four step slots an agent can report.
type StepKind int

const (
	KindThought StepKind = iota
	KindObservation
	KindCode
	KindSolution
)

// Kinds lists every StepKind in canonical emission order.
var Kinds = []StepKind{KindThought, KindObservation, KindCode, KindSolution}

// String returns the wire name of the kind.
func (k StepKind) String() string {
	switch k {
	case KindThought:
		return "thought"
	case KindObservation:
		return "observation"
	case KindCode:
		return "code"
	case KindSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// Label returns the human-readable heading for steps of kind k.
func (k StepKind) Label() string {
	switch k {
	case KindThought:
		return "Thinking"
	case KindObservation:
		return "Observation"
	case KindCode:
		return "Code Execution"
	case KindSolution:
		return "Solution"
	default:
		return "Step"
	}
}

// StepMessage is one unit of agent progress. Each slot is either empty
// (absent) or holds text. The slots are distinct step kinds rather than
// fields of one cumulative record.
type StepMessage struct {
	Thought     string
	Observation string
	Code        string
	Solution    string
}

// Text returns the content of the slot for kind k.
func (m StepMessage) Text(k StepKind) string {
	switch k {
	case KindThought:
		return m.Thought
	case KindObservation:
		return m.Observation
	case KindCode:
		return m.Code
	case KindSolution:
		return m.Solution
	default:
		return ""
	}
}

// IsEmpty reports whether no slot is populated.
func (m StepMessage) IsEmpty() bool {
	return m.Thought == "" && m.Observation == "" && m.Code == "" && m.Solution == ""
}

// Kinds returns the populated kinds in canonical order.
func (m StepMessage) Kinds() []StepKind {
	var kinds []StepKind
	for _, k := range Kinds {
		if m.Text(k) != "" {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Split returns one single-slot message per populated slot, in canonical
// order. An empty message splits into nothing.
func (m StepMessage) Split() []StepMessage {
	kinds := m.Kinds()
	if len(kinds) == 0 {
		return nil
	}
	out := make([]StepMessage, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, NewStepMessage(k, m.Text(k)))
	}
	return out
}

// NewStepMessage returns a message with only the slot for kind k set.
func NewStepMessage(k StepKind, text string) StepMessage {
	var m StepMessage
	switch k {
	case KindThought:
		m.Thought = text
	case KindObservation:
		m.Observation = text
	case KindCode:
		m.Code = text
	case KindSolution:
		m.Solution = text
	}
	return m
}

// Kind returns the kind of a single-slot message. For messages with several
// populated slots the first one in canonical order wins; ok is false for an
// empty message.
func (m StepMessage) Kind() (k StepKind, ok bool) {
	kinds := m.Kinds()
	if len(kinds) == 0 {
		return 0, false
	}
	return kinds[0], true
}
