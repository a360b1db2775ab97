package stepwise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// DefaultErrorMessage is reported when the server's error sentinel carries
// no message.
const DefaultErrorMessage = "Unknown error occurred"

var (
	errSuperseded = errors.New("session superseded")
	errCanceled   = errors.New("session canceled")
)

// Controller owns at most one active streaming session. Submitting a query
// cancels the previous session, and nothing that session produces reaches
// the handler afterwards.
//
// Steps are emitted independently: a frame carrying several populated slots
// becomes one EventMessage per slot, each with a single populated slot, in
// the order thought, observation, code, solution. Frames are never merged or
// batched, so handler order equals wire order.
//
// The handler runs on the session's read goroutine, one event at a time. It
// must not block and must not call Submit, Cancel or Close; State is safe to
// call from it.
type Controller struct {
	client        Client
	handler       func(Event)
	defaults      Request
	idleTimeout   time.Duration
	defaultErrMsg string
	logger        *slog.Logger

	// emitMu is held while delivering an event and while switching
	// sessions, so a session can never deliver once it stopped being current.
	emitMu sync.Mutex

	mu      sync.Mutex // guards the fields below
	current SessionID
	status  Status
	err     error
	cancel  context.CancelCauseFunc
	closed  bool

	wg sync.WaitGroup
}

// ControllerOption configures a [Controller].
type ControllerOption func(*Controller)

// WithLLM sets the model selector sent with every request.
func WithLLM(llm string) ControllerOption {
	return func(c *Controller) { c.defaults.LLM = llm }
}

// WithRequestDefaults sets the parameters used for fields a submitted
// request leaves empty. The Query field is ignored.
func WithRequestDefaults(r Request) ControllerOption {
	return func(c *Controller) {
		r.Query = ""
		c.defaults = r
	}
}

// WithIdleTimeout fails a session when no frame arrives for d. Zero disables
// the timeout.
func WithIdleTimeout(d time.Duration) ControllerOption {
	return func(c *Controller) { c.idleTimeout = d }
}

// WithDefaultErrorMessage sets the text reported for an error sentinel
// without a message.
func WithDefaultErrorMessage(msg string) ControllerOption {
	return func(c *Controller) { c.defaultErrMsg = msg }
}

// WithLogger sets the logger for session diagnostics. Malformed frames are
// logged at warn level.
func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a Controller that streams through client and
// delivers events to handler. A nil handler discards events.
func NewController(client Client, handler func(Event), opts ...ControllerOption) *Controller {
	if handler == nil {
		handler = func(Event) {}
	}
	c := &Controller{
		client:        client,
		handler:       handler,
		defaultErrMsg: DefaultErrorMessage,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit starts a session for query and returns its ID. Any active session
// is cancelled silently.
func (c *Controller) Submit(query string) SessionID {
	return c.SubmitRequest(Request{Query: query})
}

// SubmitRequest is like Submit but carries per-request parameters. Empty
// fields fall back to the Controller's defaults. It returns zero after Close.
func (c *Controller) SubmitRequest(req Request) SessionID {
	req = req.WithDefaults(c.defaults)

	c.emitMu.Lock()
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.emitMu.Unlock()
		return 0
	}
	if c.cancel != nil {
		c.cancel(errSuperseded)
		if c.status == StatusActive {
			c.logger.Debug("session superseded", "session", uint64(c.current))
		}
	}
	c.current++
	id := c.current
	ctx, cancel := context.WithCancelCause(context.Background())
	c.cancel = cancel
	c.status = StatusActive
	c.err = nil
	c.wg.Add(1)
	c.mu.Unlock()
	c.emitMu.Unlock()

	c.logger.Info("session started", "session", uint64(id), "llm", req.LLM)
	go c.run(ctx, cancel, id, req)
	return id
}

// Cancel stops the active session without reporting an error. It is a
// no-op when no session is active.
func (c *Controller) Cancel() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != StatusActive {
		return
	}
	c.cancel(errCanceled)
	c.status = StatusSuperseded
	c.logger.Debug("session canceled", "session", uint64(c.current))
}

// Close cancels the active session, waits for every read loop to return and
// makes later submissions no-ops.
func (c *Controller) Close() {
	c.Cancel()
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.wg.Wait()
}

// State returns a snapshot of the Controller's observable state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Busy:   c.status == StatusActive,
		Err:    c.err,
		Status: c.status,
		ID:     c.current,
	}
}

// run is the read loop of one session.
func (c *Controller) run(ctx context.Context, cancel context.CancelCauseFunc, id SessionID, req Request) {
	defer c.wg.Done()
	defer cancel(nil)
	logger := c.logger.With("session", uint64(id))

	resetIdle := func() {}
	if c.idleTimeout > 0 {
		idle := time.AfterFunc(c.idleTimeout, func() { cancel(ErrIdleTimeout) })
		defer idle.Stop()
		resetIdle = func() { idle.Reset(c.idleTimeout) }
	}

	stream, err := c.client.Stream(ctx, req)
	if err != nil {
		c.fail(ctx, id, err, logger)
		return
	}
	defer stream.Close()

	for {
		frame, err := stream.Next()
		resetIdle()
		if errors.Is(err, ErrMalformedFrame) {
			logger.Warn("skipping malformed frame", "error", err)
			continue
		}
		if err == io.EOF {
			err = ErrUnexpectedEOF
		}
		if err != nil {
			c.fail(ctx, id, err, logger)
			return
		}

		switch f := frame.(type) {
		case FrameStep:
			for _, msg := range f.Message.Split() {
				if !c.deliver(id, EventMessage{Session: id, Message: msg}) {
					return
				}
			}
		case FrameDone:
			logger.Info("session completed")
			c.finish(id, StatusCompleted, nil, EventCompleted{Session: id})
			return
		case FrameError:
			text := f.Message
			if text == "" {
				text = c.defaultErrMsg
			}
			agentErr := &AgentError{Message: text}
			logger.Warn("agent reported error", "error", agentErr)
			c.finish(id, StatusFailed, agentErr, EventFailed{Session: id, Err: agentErr})
			return
		}
	}
}

// fail ends a session after a transport failure. Failures caused by
// supersession or Cancel are silent.
func (c *Controller) fail(ctx context.Context, id SessionID, err error, logger *slog.Logger) {
	switch cause := context.Cause(ctx); {
	case errors.Is(cause, errSuperseded), errors.Is(cause, errCanceled):
		logger.Debug("session read loop stopped", "cause", cause)
		return
	case errors.Is(cause, ErrIdleTimeout):
		err = fmt.Errorf("%w: no data received for %s", ErrIdleTimeout, c.idleTimeout)
	}
	logger.Warn("session failed", "error", err)
	c.finish(id, StatusFailed, err, EventFailed{Session: id, Err: err})
}

// deliver hands evt to the handler if id is still the active session.
func (c *Controller) deliver(id SessionID, evt Event) bool {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	if !c.isActive(id) {
		return false
	}
	c.handler(evt)
	return true
}

// finish moves session id to a terminal status and delivers its final
// event, unless the session is no longer active.
func (c *Controller) finish(id SessionID, status Status, err error, evt Event) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.mu.Lock()
	if id != c.current || c.status != StatusActive {
		c.mu.Unlock()
		return
	}
	c.status = status
	c.err = err
	c.mu.Unlock()
	c.handler(evt)
}

func (c *Controller) isActive(id SessionID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return id == c.current && c.status == StatusActive
}
