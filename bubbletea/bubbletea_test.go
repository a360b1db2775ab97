package bubbletea_test

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/stepwise"
	bt "github.com/fwojciec/stepwise/bubbletea"
	"github.com/stretchr/testify/require"
)

// fakeController records calls and hands out increasing session IDs.
type fakeController struct {
	mu      sync.Mutex
	queries []string
	cancels int
	next    stepwise.SessionID
}

func (c *fakeController) Submit(query string) stepwise.SessionID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = append(c.queries, query)
	c.next++
	return c.next
}

func (c *fakeController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancels++
}

func (c *fakeController) Queries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.queries...)
}

func (c *fakeController) Cancels() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancels
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, ctrl bt.Controller) bt.Model {
	t.Helper()
	return initModelWith(t, ctrl, bt.Config{}, 80, 24)
}

func initModelWith(t *testing.T, ctrl bt.Controller, cfg bt.Config, width, height int) bt.Model {
	t.Helper()
	m := bt.New(ctrl, bt.NewInbox(), stepwise.DefaultTheme(), cfg)
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// submit types query into the input and presses Enter.
func submit(t *testing.T, m bt.Model, query string) bt.Model {
	t.Helper()
	m.Input.SetValue(query)
	return updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func event(e stepwise.Event) bt.StreamEventMsg {
	return bt.StreamEventMsg{Event: e}
}

func stepEvent(id stepwise.SessionID, k stepwise.StepKind, text string) bt.StreamEventMsg {
	return event(stepwise.EventMessage{Session: id, Message: stepwise.NewStepMessage(k, text)})
}

func lipglossWidth(s string) int {
	return lipgloss.Width(s)
}
