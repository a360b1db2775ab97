package mock

import (
	"io"

	"github.com/fwojciec/stepwise"
)

var _ stepwise.Stream = (*Stream)(nil)

// Stream is a test double for stepwise.Stream. NextFn must be set; CloseFn
// may be nil since callers usually defer Close.
type Stream struct {
	NextFn  func() (stepwise.Frame, error)
	CloseFn func() error

	Closed bool
}

// Replay returns a Stream that yields frames in order and then io.EOF.
func Replay(frames ...stepwise.Frame) *Stream {
	var i int
	return &Stream{NextFn: func() (stepwise.Frame, error) {
		if i == len(frames) {
			return nil, io.EOF
		}
		f := frames[i]
		i++
		return f, nil
	}}
}

func (s *Stream) Next() (stepwise.Frame, error) {
	return s.NextFn()
}

// Close records the call and delegates to CloseFn when set.
func (s *Stream) Close() error {
	s.Closed = true
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
