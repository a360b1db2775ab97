package stepwise

// Frame is a sealed interface for a classified event payload.
// Payloads that match no shape are reported as ErrMalformedFrame by
// Stream.Next instead of becoming a Frame.
type Frame interface {
	frame()
}

// FrameStep is a field-update payload. Its message may be empty when the
// server sent none of the step fields.
type FrameStep struct {
	Message StepMessage
}

func (FrameStep) frame() {}

// FrameDone is the completion sentinel.
type FrameDone struct{}

func (FrameDone) frame() {}

// FrameError is the error sentinel. Message may be empty.
type FrameError struct {
	Message string
}

func (FrameError) frame() {}

// Interface compliance checks.
var (
	_ Frame = FrameStep{}
	_ Frame = FrameDone{}
	_ Frame = FrameError{}
)

// Stream uses a pull-based iterator pattern over the frames of one
// streaming response. Cancellation flows through the context passed to
// Client.Stream.
//
// Next returns:
//   - a Frame and nil error for every classified payload;
//   - nil and an error wrapping ErrMalformedFrame for a payload that could
//     not be classified. The stream stays usable;
//   - nil and ErrUnexpectedEOF when input ended before a terminal sentinel;
//   - nil and io.EOF after a terminal sentinel has been returned;
//   - nil and the transport error otherwise.
type Stream interface {
	Next() (Frame, error)
	Close() error
}
