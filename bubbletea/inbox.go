package bubbletea

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/stepwise"
)

// Inbox queues session events between the controller's read goroutine and
// the Bubble Tea event loop. Push never blocks, so a handler backed by an
// Inbox cannot stall the controller while Update is calling into it.
type Inbox struct {
	mu     sync.Mutex
	queue  []stepwise.Event
	closed bool

	notify chan struct{} // capacity 1, signalled on Push
	done   chan struct{}
}

// NewInbox creates an empty Inbox.
func NewInbox() *Inbox {
	return &Inbox{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Push appends e to the queue. It is safe to use as a controller handler.
func (in *Inbox) Push(e stepwise.Event) {
	in.mu.Lock()
	if in.closed {
		in.mu.Unlock()
		return
	}
	in.queue = append(in.queue, e)
	in.mu.Unlock()

	select {
	case in.notify <- struct{}{}:
	default:
	}
}

// Close releases a pending Listen. Later pushes are dropped.
func (in *Inbox) Close() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return
	}
	in.closed = true
	close(in.done)
}

// Len reports the number of queued events.
func (in *Inbox) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}

// Listen returns a command that waits for the next event and delivers it as
// a [StreamEventMsg]. It returns nil once the Inbox is closed.
func (in *Inbox) Listen() tea.Cmd {
	return func() tea.Msg {
		e, ok := in.next()
		if !ok {
			return nil
		}
		return StreamEventMsg{Event: e}
	}
}

func (in *Inbox) next() (stepwise.Event, bool) {
	for {
		in.mu.Lock()
		if in.closed {
			in.mu.Unlock()
			return nil, false
		}
		if len(in.queue) > 0 {
			e := in.queue[0]
			in.queue[0] = nil
			in.queue = in.queue[1:]
			in.mu.Unlock()
			return e, true
		}
		in.mu.Unlock()

		select {
		case <-in.notify:
		case <-in.done:
		}
	}
}
