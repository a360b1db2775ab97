package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/stepwise"
)

var _ tea.Model = Model{}

// Config holds presentation settings.
type Config struct {
	// DropPartialOnError removes the steps of a failed session from the
	// transcript, leaving the query and the error.
	DropPartialOnError bool
}

// Model is the Bubble Tea model for the agent TUI.
type Model struct {
	// Input is the query input. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript. Exported for test access.
	Viewport viewport.Model
	// Spinner animates the status line while a session runs.
	Spinner spinner.Model

	ctrl   Controller
	inbox  *Inbox
	theme  stepwise.Theme
	styles Styles
	cfg    Config

	blocks     []MessageBlock
	blockFocus int // index of focused collapsible block (-1 = none)

	// Events are accepted only from session while busy. stepStart is the
	// index of the first block produced by that session.
	session   stepwise.SessionID
	stepStart int
	steps     int

	busy  bool
	err   error
	ready bool
}

// New creates a TUI Model that submits queries through ctrl and reads
// session events from inbox. The inbox must be the controller's handler.
func New(ctrl Controller, inbox *Inbox, theme stepwise.Theme, cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask the agent..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 0

	if inbox == nil {
		inbox = NewInbox()
	}
	styles := NewStyles(theme)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Accent))

	return Model{
		Input:      ti,
		Spinner:    sp,
		ctrl:       ctrl,
		inbox:      inbox,
		theme:      theme,
		styles:     styles,
		cfg:        cfg,
		blockFocus: -1,
	}
}

// Busy reports whether a session is running.
func (m Model) Busy() bool { return m.busy }

// Err returns the error of the last session, if it failed.
func (m Model) Err() error { return m.err }

// Session returns the ID of the most recently submitted session.
func (m Model) Session() stepwise.SessionID { return m.session }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.inbox.Listen())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StreamEventMsg:
		m = m.processEvent(msg.Event)
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		return m, m.inbox.Listen()

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	const inputHeight, statusHeight, gaps = 1, 1, 2
	vpHeight := max(msg.Height-inputHeight-statusHeight-gaps, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.busy {
			m.ctrl.Cancel()
			m = m.endSession(NewOutcomeBlock(stepwise.StatusSuperseded, m.steps, m.styles))
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submit(text)

	case tea.KeyTab:
		if m.blockFocus >= 0 {
			block, cmd := m.blocks[m.blockFocus].Update(ToggleMsg{})
			m.blocks[m.blockFocus] = block
			m.Viewport.SetContent(m.renderContent())
			return m, cmd
		}
		return m, nil

	case tea.KeyShiftTab:
		m = m.cycleFocusPrev()
		return m, nil
	}

	// Character keys go only to the input: 'j' and 'k' are both viewport
	// scroll keys and text.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit starts a session for text. A running session is superseded: its
// steps stay in the transcript and nothing more arrives from it.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	if m.busy {
		m = m.endSession(NewOutcomeBlock(stepwise.StatusSuperseded, m.steps, m.styles))
	}
	m.Input.SetValue("")
	m.err = nil

	m.blocks = append(m.blocks, NewQueryBlock(text, m.styles))
	m.session = m.ctrl.Submit(text)
	m.stepStart = len(m.blocks)
	m.steps = 0
	m.busy = true

	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m, m.Spinner.Tick
}

// processEvent applies an event of the current session to the transcript.
// Events from earlier sessions may still be queued and are dropped.
func (m Model) processEvent(evt stepwise.Event) Model {
	if !m.busy || evt.SessionID() != m.session {
		return m
	}
	switch e := evt.(type) {
	case stepwise.EventMessage:
		for _, part := range e.Message.Split() {
			kind, _ := part.Kind()
			m.steps++
			m.blocks = append(m.blocks, NewStepBlock(kind, part.Text(kind), m.steps, m.theme, m.styles))
		}
		m = m.updateBlockFocus()
	case stepwise.EventCompleted:
		m = m.endSession(NewOutcomeBlock(stepwise.StatusCompleted, m.steps, m.styles))
	case stepwise.EventFailed:
		if m.cfg.DropPartialOnError {
			m.blocks = m.blocks[:m.stepStart]
		}
		m.err = e.Err
		m = m.endSession(NewErrorBlock(e.Err, m.styles))
	}
	return m
}

// endSession records the outcome of the current session and goes idle.
func (m Model) endSession(outcome MessageBlock) Model {
	m.busy = false
	m.blocks = append(m.blocks, outcome)
	m = m.updateBlockFocus()
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) renderContent() string {
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString(blockSeparator(m.blocks[i-1], block))
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func collapsible(b MessageBlock) bool {
	sb, ok := b.(*StepBlock)
	return ok && sb.Collapsible()
}

// updateBlockFocus focuses the last collapsible block.
func (m Model) updateBlockFocus() Model {
	m.blockFocus = -1
	for i := len(m.blocks) - 1; i >= 0; i-- {
		if collapsible(m.blocks[i]) {
			m.blockFocus = i
			return m
		}
	}
	return m
}

// cycleFocusPrev moves blockFocus to the previous collapsible block, wrapping around.
func (m Model) cycleFocusPrev() Model {
	if len(m.blocks) == 0 {
		return m
	}
	start := m.blockFocus - 1
	if start < 0 {
		start = len(m.blocks) - 1
	}
	for i := range len(m.blocks) {
		idx := (start - i + len(m.blocks)) % len(m.blocks)
		if collapsible(m.blocks[idx]) {
			m.blockFocus = idx
			return m
		}
	}
	m.blockFocus = -1
	return m
}

func (m Model) statusLine() string {
	if m.busy {
		return m.Spinner.View() + m.styles.Muted.Render(fmt.Sprintf(" Working · %s · Enter to redirect, Ctrl+C to stop", pluralSteps(m.steps)))
	}
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	return m.styles.Muted.Render("Enter to send, Tab to expand, Ctrl+C to quit")
}
