package stepwise

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrMalformedFrame indicates a payload that is not valid JSON or
	// matches no known frame shape. Sessions skip such frames.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrUnexpectedEOF indicates the stream ended before a terminal sentinel.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrIdleTimeout indicates no frame arrived within the configured idle timeout.
	ErrIdleTimeout = errors.New("idle timeout")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")
)

// AgentError is the failure reported by the server's error sentinel.
// Error returns the server's message verbatim.
type AgentError struct {
	Message string
}

func (e *AgentError) Error() string { return e.Message }

// HTTPError reports a non-success response status from the agent server.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP error: status %d: %s", e.StatusCode, e.Body)
}
