package bubbletea

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/stepwise"
)

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock shows why a session failed.
type ErrorBlock struct {
	err    error
	styles Styles
}

func NewErrorBlock(err error, styles Styles) *ErrorBlock {
	return &ErrorBlock{err: err, styles: styles}
}

func (b *ErrorBlock) Update(tea.Msg) (MessageBlock, tea.Cmd) { return b, nil }

func (b *ErrorBlock) View(width int) string {
	return lipgloss.NewStyle().Width(width).Render(b.styles.Error.Render(ErrorLine(b.err)))
}

// ErrorLine describes a session failure on one line, naming where it came
// from: the agent itself, the server, or the idle watchdog.
func ErrorLine(err error) string {
	var agentErr *stepwise.AgentError
	var httpErr *stepwise.HTTPError
	title := "Error"
	switch {
	case errors.As(err, &agentErr):
		return "✗ Agent error: " + agentErr.Message
	case errors.As(err, &httpErr):
		title = "Server error"
	case errors.Is(err, stepwise.ErrIdleTimeout):
		title = "Timed out"
	case errors.Is(err, stepwise.ErrUnexpectedEOF):
		title = "Connection lost"
	}
	return "✗ " + title + ": " + err.Error()
}
