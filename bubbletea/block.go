package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// MessageBlock is a renderable element in the transcript.
// Unlike tea.Model, View takes a width parameter so the root model
// controls layout and blocks are testable in isolation.
type MessageBlock interface {
	Update(tea.Msg) (MessageBlock, tea.Cmd)
	View(width int) string
}

// ToggleMsg tells a collapsible block to toggle its collapsed state.
// Sent by the root model when the user presses Tab on a focused block.
type ToggleMsg struct{}

// blockSeparator returns the whitespace placed between two adjacent blocks.
// A session outcome sits directly under the step it follows.
func blockSeparator(prev, curr MessageBlock) string {
	if _, ok := curr.(*OutcomeBlock); ok {
		if _, ok := prev.(*StepBlock); ok {
			return "\n"
		}
	}
	return "\n\n"
}
