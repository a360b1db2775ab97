package bubbletea

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/stepwise"
)

var _ MessageBlock = (*OutcomeBlock)(nil)

// OutcomeBlock marks how a session without an error ended.
type OutcomeBlock struct {
	status stepwise.Status
	steps  int
	styles Styles
}

// NewOutcomeBlock creates an OutcomeBlock for a session that reached status
// after emitting steps messages.
func NewOutcomeBlock(status stepwise.Status, steps int, styles Styles) *OutcomeBlock {
	return &OutcomeBlock{status: status, steps: steps, styles: styles}
}

func (b *OutcomeBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *OutcomeBlock) View(width int) string {
	var content string
	switch b.status {
	case stepwise.StatusCompleted:
		content = b.styles.Success.Render(fmt.Sprintf("✓ Completed · %s", pluralSteps(b.steps)))
	case stepwise.StatusSuperseded:
		content = b.styles.Muted.Render(fmt.Sprintf("■ Stopped after %s", pluralSteps(b.steps)))
	default:
		content = b.styles.Muted.Render(b.status.String())
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

func pluralSteps(n int) string {
	if n == 1 {
		return "1 step"
	}
	return fmt.Sprintf("%d steps", n)
}
