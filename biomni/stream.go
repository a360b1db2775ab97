package biomni

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/stepwise"
	"github.com/fwojciec/stepwise/sse"
)

// stream implements [stepwise.Stream] by decoding event payloads from an
// HTTP response body.
type stream struct {
	body    io.ReadCloser
	decoder *sse.Decoder
	ctx     context.Context
	err     error // terminal error, io.EOF after a sentinel
	closed  bool
}

// Interface compliance check.
var _ stepwise.Stream = (*stream)(nil)

func newStream(ctx context.Context, body io.ReadCloser, opts ...sse.Option) *stream {
	return &stream{
		body:    body,
		decoder: sse.NewDecoder(body, opts...),
		ctx:     ctx,
	}
}

// Next reads and classifies the next payload. Malformed payloads return an
// error wrapping [stepwise.ErrMalformedFrame] and leave the stream usable.
func (s *stream) Next() (stepwise.Frame, error) {
	if s.closed {
		return nil, fmt.Errorf("biomni: %w", stepwise.ErrStreamClosed)
	}
	if s.err != nil {
		return nil, s.err
	}

	payload, err := s.decoder.Next()
	if err != nil {
		s.terminate(err)
		return nil, s.err
	}

	frame, err := ParseFrame(payload)
	if err != nil {
		return nil, fmt.Errorf("biomni: %w", err)
	}
	switch frame.(type) {
	case stepwise.FrameDone, stepwise.FrameError:
		s.err = io.EOF
	}
	return frame, nil
}

// Close closes the underlying HTTP response body.
func (s *stream) Close() error {
	s.closed = true
	return s.body.Close()
}

// terminate records a terminal error. A clean end of input before any
// sentinel means the server went away mid-run.
func (s *stream) terminate(err error) {
	if err == io.EOF {
		s.err = fmt.Errorf("biomni: %w", stepwise.ErrUnexpectedEOF)
		return
	}
	if cause := context.Cause(s.ctx); cause != nil {
		s.err = fmt.Errorf("biomni: %w", cause)
		return
	}
	s.err = fmt.Errorf("biomni: %w", err)
}
