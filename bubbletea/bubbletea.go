// Package bubbletea provides a Bubble Tea TUI for a streaming agent session.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/stepwise"
)

// Controller starts and stops agent sessions. It is satisfied by
// *stepwise.Controller.
type Controller interface {
	Submit(query string) stepwise.SessionID
	Cancel()
}

var _ Controller = (*stepwise.Controller)(nil)

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// StreamEventMsg wraps a session event for delivery to the Bubble Tea model.
type StreamEventMsg struct {
	Event stepwise.Event
}
