package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/stepwise"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Query       lipgloss.Style
	Thought     lipgloss.Style
	Observation lipgloss.Style
	Code        lipgloss.Style
	Solution    lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t stepwise.Theme) Styles {
	return Styles{
		Query:       lipgloss.NewStyle().Foreground(ansiColor(t.Query)).Bold(true),
		Thought:     lipgloss.NewStyle().Foreground(ansiColor(t.Thought)).Bold(true),
		Observation: lipgloss.NewStyle().Foreground(ansiColor(t.Observation)).Bold(true),
		Code:        lipgloss.NewStyle().Foreground(ansiColor(t.Code)).Bold(true),
		Solution:    lipgloss.NewStyle().Foreground(ansiColor(t.Solution)).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:     lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:       lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

// Step returns the header style for a step kind.
func (s Styles) Step(k stepwise.StepKind) lipgloss.Style {
	switch k {
	case stepwise.KindThought:
		return s.Thought
	case stepwise.KindObservation:
		return s.Observation
	case stepwise.KindCode:
		return s.Code
	case stepwise.KindSolution:
		return s.Solution
	default:
		return s.Muted
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
